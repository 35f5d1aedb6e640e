package extractor

// Route is one extracted route declaration. A Route is filled in at match
// time and never mutated afterwards; slices of Routes keep source order.
type Route struct {
	Name        string
	Method      string // uppercase: GET, POST, PUT, DELETE or PATCH
	Path        string // base path + declared subpath, normalized
	SubPath     string // subpath exactly as written in the declaration
	Description string
	File        string // source file the declaration came from
	Line        int    // 1-based line of the declaration
}

// FileRoutes groups the routes extracted from one mapped source file.
type FileRoutes struct {
	File     string
	BasePath string
	Routes   []Route
}
