package flow

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/style"
)

// Context carries the collaborators and per-pass state a conversion
// needs. One Context serves one conversion pass; its caches and id
// generator are discarded with it.
type Context struct {
	Styles    *style.Resolver
	Numbering *Numbering
	IDs       *IDGenerator
	Config    model.LayoutConfig

	// TrackMode controls tracked-change visibility filtering. TrackShowAll
	// disables filtering.
	TrackMode TrackMode

	// CellBackground is the resolved background fill of the enclosing
	// table cell, threaded down so automatic text color resolves against
	// the correct surface.
	CellBackground string

	// SDT is the structured-content metadata inherited from an enclosing
	// wrapper node, nil outside one.
	SDT *model.SDTInfo

	// warnings is shared between a context and its children so drops
	// recorded deep in a nested table surface at the top.
	warnings *[]model.Warning
}

// NewContext returns a conversion context with defaults: no numbering,
// show-all tracked changes, default layout constants.
func NewContext(styles *style.Resolver) *Context {
	if styles == nil {
		styles = style.NewResolver(nil)
	}
	return &Context{
		Styles:    styles,
		Numbering: NewNumbering(nil),
		IDs:       NewIDGenerator(),
		Config:    model.DefaultLayoutConfig(),
		TrackMode: TrackShowAll,
		warnings:  new([]model.Warning),
	}
}

// Warn records a non-fatal conversion problem.
func (ctx *Context) Warn(code model.WarningCode, message, context string) {
	if ctx.warnings == nil {
		ctx.warnings = new([]model.Warning)
	}
	*ctx.warnings = append(*ctx.warnings, model.Warning{
		Code:    code,
		Message: message,
		Context: context,
	})
}

// Warnings returns the warnings accumulated so far.
func (ctx *Context) Warnings() []model.Warning {
	if ctx.warnings == nil {
		return nil
	}
	return *ctx.warnings
}

// child returns a copy of the context with cell background and SDT
// overridden; warnings still accumulate on the root context.
func (ctx *Context) child(background string, sdt *model.SDTInfo) *Context {
	c := *ctx
	if background != "" {
		c.CellBackground = background
	}
	if sdt != nil {
		c.SDT = sdt
	}
	return &c
}
