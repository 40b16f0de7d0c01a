package kettle

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// documentName reads the declared name. Transformations keep it under an
// "info" wrapper, jobs declare it at the top level.
func documentName(root cty.Value) string {
	if info, ok := kgcty.Attr(root, "info"); ok {
		if name, ok := kgcty.AttrString(info, "name"); ok && name != "" {
			return name
		}
	}
	name, _ := kgcty.AttrString(root, "name")
	return name
}

// documentDescription reads the optional declared description.
func documentDescription(root cty.Value) string {
	if info, ok := kgcty.Attr(root, "info"); ok {
		if desc, ok := kgcty.AttrString(info, "description"); ok && desc != "" {
			return desc
		}
	}
	desc, _ := kgcty.AttrString(root, "description")
	return desc
}

// connections lifts the declared database connection names.
func connections(root cty.Value) []string {
	conn, ok := kgcty.Attr(root, "connection")
	if !ok {
		return nil
	}
	var names []string
	for _, c := range kgcty.List(conn) {
		if name, ok := kgcty.AttrString(c, "name"); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parameters lifts the declared parameters. Transformations nest them under
// info/parameters, jobs under a top-level parameters element.
func parameters(root cty.Value) []model.Parameter {
	container := root
	if info, ok := kgcty.Attr(root, "info"); ok {
		if _, has := kgcty.Attr(info, "parameters"); has {
			container = info
		}
	}
	wrapper, ok := kgcty.Attr(container, "parameters")
	if !ok {
		return nil
	}
	param, ok := kgcty.Attr(wrapper, "parameter")
	if !ok {
		return nil
	}

	var params []model.Parameter
	for _, p := range kgcty.List(param) {
		name, ok := kgcty.AttrString(p, "name")
		if !ok || name == "" {
			continue
		}
		def, _ := kgcty.AttrString(p, "default_value")
		desc, _ := kgcty.AttrString(p, "description")
		params = append(params, model.Parameter{Name: name, Default: def, Description: desc})
	}
	return params
}
