// Package inspect serves a read-only JSON view of a container.
package inspect

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/km-arc/microioc/framework/container"
	gohttp "github.com/km-arc/microioc/framework/http"
	"github.com/km-arc/microioc/framework/routing"
)

// EntryView is the JSON shape of one registry entry.
type EntryView struct {
	Key  string         `json:"key"`
	Kind container.Kind `json:"kind"`
	// Type is the dynamic type of an instance value; factories leave it empty.
	Type string `json:"type,omitempty"`
}

// StatusView is the JSON shape of the container status.
type StatusView struct {
	Locked  bool `json:"locked"`
	Entries int  `json:"entries"`
}

// Controller exposes a container over HTTP.
//
//	GET {prefix}/entries        → all entries, registration order
//	GET {prefix}/entries/{key}  → one entry, key URL-escaped
//	GET {prefix}/status         → locked flag and entry count
type Controller struct {
	c *container.IocContainer
}

// NewController returns a Controller reading c.
func NewController(c *container.IocContainer) *Controller {
	return &Controller{c: c}
}

// Routes mounts the controller under prefix.
func (ctl *Controller) Routes(r *routing.Router, prefix string) {
	r.Prefix(prefix, func(sub *routing.Router) {
		sub.Get("/entries", ctl.Index)
		sub.Get("/entries/{key}", ctl.Show)
		sub.Get("/status", ctl.Status)
	})
}

// Index lists every entry.
func (ctl *Controller) Index(w http.ResponseWriter, _ *http.Request) {
	views := make([]EntryView, 0, ctl.c.Len())
	for key, entry := range ctl.c.All() {
		views = append(views, view(key, entry))
	}
	gohttp.NewResponse(w).Success(views)
}

// Show returns the entry whose key renders as the {key} parameter.
func (ctl *Controller) Show(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	raw := routing.Param(r, "key")
	name, err := url.PathUnescape(raw)
	if err != nil {
		res.Error(http.StatusBadRequest, fmt.Sprintf("invalid key %q", raw))
		return
	}
	for key, entry := range ctl.c.All() {
		if key.String() == name {
			res.Success(view(key, entry))
			return
		}
	}
	res.NotFound(fmt.Sprintf("no entry for [%s]", name))
}

// Status reports the locked flag and the entry count.
func (ctl *Controller) Status(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(StatusView{
		Locked:  ctl.c.Locked(),
		Entries: ctl.c.Len(),
	})
}

func view(key container.Key, entry container.Entry) EntryView {
	v := EntryView{Key: key.String(), Kind: entry.Kind()}
	if inst, ok := entry.(container.Instance); ok {
		v.Type = fmt.Sprintf("%T", inst.Value)
	}
	return v
}
