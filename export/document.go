// Package export serializes a verified leafbind.Assembly into the stable
// document the external binding generator consumes, as JSON or YAML, and
// publishes the JSON Schema describing that document.
package export

import (
	leafbind "github.com/reoring/leafbind"
)

// Document is the top-level export structure.
type Document struct {
	Library   string        `json:"library" yaml:"library"`
	Version   string        `json:"version" yaml:"version"`
	Resources []ResourceDoc `json:"resources" yaml:"resources"`
	Types     []TypeDoc     `json:"types" yaml:"types"`
}

// ResourceDoc is one ordered web resource declaration.
type ResourceDoc struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	URL      string   `json:"url" yaml:"url"`
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty"`
}

// TypeDoc is one exported type declaration. Kind discriminates class,
// interface, options, and alias.
type TypeDoc struct {
	Name       string      `json:"name" yaml:"name"`
	Kind       string      `json:"kind" yaml:"kind"`
	Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty"`
	Inherits   string      `json:"inherits,omitempty" yaml:"inherits,omitempty"`
	Implements []string    `json:"implements,omitempty" yaml:"implements,omitempty"`
	Alias      *RefDoc     `json:"alias,omitempty" yaml:"alias,omitempty"`
	Members    []MemberDoc `json:"members,omitempty" yaml:"members,omitempty"`
	Events     []EventDoc  `json:"events,omitempty" yaml:"events,omitempty"`
}

// MemberDoc is one constructor, method, property, or options field.
type MemberDoc struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Name     string     `json:"name" yaml:"name"`
	Doc      string     `json:"doc,omitempty" yaml:"doc,omitempty"`
	Static   bool       `json:"static,omitempty" yaml:"static,omitempty"`
	Event    string     `json:"event,omitempty" yaml:"event,omitempty"`
	Params   []ParamDoc `json:"params,omitempty" yaml:"params,omitempty"`
	Returns  *RefDoc    `json:"returns,omitempty" yaml:"returns,omitempty"`
	Type     *RefDoc    `json:"type,omitempty" yaml:"type,omitempty"`
	Optional bool       `json:"optional,omitempty" yaml:"optional,omitempty"`
	Default  any        `json:"default,omitempty" yaml:"default,omitempty"`
}

// ParamDoc is one parameter of a member or callback signature.
type ParamDoc struct {
	Name     string `json:"name" yaml:"name"`
	Type     RefDoc `json:"type" yaml:"type"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// RefDoc is the exported form of a TypeRef; kind discriminates the shapes.
type RefDoc struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Elem     *RefDoc    `json:"elem,omitempty" yaml:"elem,omitempty"`
	Key      *RefDoc    `json:"key,omitempty" yaml:"key,omitempty"`
	Value    *RefDoc    `json:"value,omitempty" yaml:"value,omitempty"`
	Params   []ParamDoc `json:"params,omitempty" yaml:"params,omitempty"`
	Returns  *RefDoc    `json:"returns,omitempty" yaml:"returns,omitempty"`
	Variants []RefDoc   `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// EventDoc is one event declaration with its payload shape.
type EventDoc struct {
	Name    string `json:"name" yaml:"name"`
	Payload RefDoc `json:"payload" yaml:"payload"`
	Doc     string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Build projects the assembly into the export document. Types keep the
// registry's declaration order so output is stable across runs.
func Build(a *leafbind.Assembly) *Document {
	doc := &Document{
		Library: a.Library(),
		Version: a.Version(),
	}
	for _, r := range a.Resources() {
		doc.Resources = append(doc.Resources, ResourceDoc{
			Name:     r.Name,
			Kind:     string(r.Kind),
			URL:      r.URL,
			Requires: append([]string(nil), r.Requires...),
		})
	}
	for _, td := range a.Types() {
		doc.Types = append(doc.Types, buildType(td))
	}
	return doc
}

func buildType(td *leafbind.TypeDescriptor) TypeDoc {
	out := TypeDoc{
		Name:       td.Name,
		Kind:       string(td.Kind),
		Doc:        td.Doc,
		Inherits:   td.Inherits,
		Implements: append([]string(nil), td.Implements...),
		Alias:      buildRefPtr(td.Alias),
	}
	for _, m := range td.Members {
		out.Members = append(out.Members, MemberDoc{
			Kind:     string(m.Kind),
			Name:     m.Name,
			Doc:      m.Doc,
			Static:   m.Static,
			Event:    m.EventName,
			Params:   buildParams(m.Params),
			Returns:  buildRefPtr(m.Result),
			Type:     buildRefPtr(m.Type),
			Optional: m.Optional,
			Default:  m.Default,
		})
	}
	for _, ev := range td.Events {
		out.Events = append(out.Events, EventDoc{
			Name:    ev.Name,
			Payload: buildRef(ev.Payload),
			Doc:     ev.Doc,
		})
	}
	return out
}

func buildParams(params []leafbind.Param) []ParamDoc {
	if len(params) == 0 {
		return nil
	}
	out := make([]ParamDoc, 0, len(params))
	for _, p := range params {
		out = append(out, ParamDoc{Name: p.Name, Type: buildRef(p.Type), Optional: p.Optional})
	}
	return out
}

func buildRef(r leafbind.TypeRef) RefDoc {
	out := RefDoc{
		Kind:    string(r.Kind),
		Name:    r.Name,
		Elem:    buildRefPtr(r.Elem),
		Key:     buildRefPtr(r.Key),
		Value:   buildRefPtr(r.Value),
		Params:  buildParams(r.Params),
		Returns: buildRefPtr(r.Result),
	}
	for _, v := range r.Variants {
		out.Variants = append(out.Variants, buildRef(v))
	}
	return out
}

func buildRefPtr(r *leafbind.TypeRef) *RefDoc {
	if r == nil {
		return nil
	}
	d := buildRef(*r)
	return &d
}
