package collection

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/wexp-dev/go-postman-generator/internal/extractor"
)

// Variables resolved by the Postman environment at request time.
const (
	hostVariable  = "{{base_url}}"
	tokenVariable = "{{token}}"
)

// bodyTemplate seeds an editable JSON payload on body-carrying requests.
const bodyTemplate = "{\n    \n}"

var bodyMethods = []string{"POST", "PUT", "PATCH"}

// Config carries the collection header fields.
type Config struct {
	Name        string
	Description string
}

type Builder struct {
	config Config
}

func New(config Config) *Builder {
	return &Builder{config: config}
}

// Build assembles the collection document. Files arrive in mapping order
// and that order is preserved; a file without routes contributes no folder
// at all.
func (b *Builder) Build(files []extractor.FileRoutes) *Collection {
	coll := &Collection{
		Info: Info{
			Name:        b.config.Name,
			Description: b.config.Description,
			Schema:      SchemaURL,
		},
		Item: []Folder{},
	}

	for _, fr := range files {
		if len(fr.Routes) == 0 {
			continue
		}
		folder := Folder{Name: FolderName(fr.BasePath), Item: []Item{}}
		for _, route := range fr.Routes {
			folder.Item = append(folder.Item, b.buildItem(route))
		}
		coll.Item = append(coll.Item, folder)
	}
	return coll
}

func (b *Builder) buildItem(route extractor.Route) Item {
	item := Item{
		Name: route.Name,
		Request: Request{
			Method: route.Method,
			Header: []Header{
				{Key: "Content-Type", Value: "application/json"},
				{Key: "Authorization", Value: "Bearer " + tokenVariable},
			},
			URL: URL{
				Raw:  hostVariable + route.Path,
				Host: []string{hostVariable},
				Path: pathSegments(route.Path),
			},
			Description: route.Description,
		},
		Response: []interface{}{},
	}

	if lo.Contains(bodyMethods, route.Method) {
		item.Request.Body = &Body{Mode: "raw", Raw: bodyTemplate}
	}
	return item
}

// pathSegments splits a request path the way Postman stores it: bare
// segments with no empties, even for paths like "/" or "//".
func pathSegments(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return lo.Filter(parts, func(p string, _ int) bool {
		return p != ""
	})
}

// FolderName derives a folder's display name from its base path: the /api/
// prefix goes, remaining slashes collapse, and the first letter is
// uppercased with the rest kept as written. /api/car-import becomes
// Car-import and /webhooks becomes Webhooks.
func FolderName(basePath string) string {
	name := strings.TrimPrefix(basePath, "/api/")
	name = strings.ReplaceAll(name, "/", "")
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}
