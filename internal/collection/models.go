package collection

// SchemaURL identifies the Postman collection format this generator emits.
// Postman uses it to pick the importer.
const SchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection is the root of a Postman v2.1.0 document. Struct order is
// marshal order and matches what the Postman importer has always been fed,
// so field positions here are load-bearing.
type Collection struct {
	Info Info     `json:"info" yaml:"info"`
	Item []Folder `json:"item" yaml:"item"`
}

// Info is the collection header block.
type Info struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Schema      string `json:"schema" yaml:"schema"`
}

// Folder groups the requests of one route file.
type Folder struct {
	Name string `json:"name" yaml:"name"`
	Item []Item `json:"item" yaml:"item"`
}

// Item is a single request entry inside a folder.
type Item struct {
	Name     string        `json:"name" yaml:"name"`
	Request  Request       `json:"request" yaml:"request"`
	Response []interface{} `json:"response" yaml:"response"`
}

type Request struct {
	Method      string   `json:"method" yaml:"method"`
	Header      []Header `json:"header" yaml:"header"`
	URL         URL      `json:"url" yaml:"url"`
	Description string   `json:"description" yaml:"description"`
	Body        *Body    `json:"body,omitempty" yaml:"body,omitempty"`
}

type Header struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type URL struct {
	Raw  string   `json:"raw" yaml:"raw"`
	Host []string `json:"host" yaml:"host"`
	Path []string `json:"path" yaml:"path"`
}

type Body struct {
	Mode string `json:"mode" yaml:"mode"`
	Raw  string `json:"raw" yaml:"raw"`
}
