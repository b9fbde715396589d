package http

import (
	"sync"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	data []byte
}

func (d openAPIDoc) ReadDoc() string {
	return string(d.data)
}

var registerDocOnce sync.Once

// registerDoc exposes the document to echo-swagger under swag.Name.
func registerDoc(data []byte) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{data: data})
	})
}
