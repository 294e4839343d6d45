package document

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DecodeHCL parses an HCL file into an Object. Top-level attributes become
// keys of the result. Every block of type listType is turned into an Object
// whose first key is labelKey (set from the block's single label), followed
// by the block's attributes in source order. When at least one such block
// exists, the objects are stored, in block order, as a list under listType.
//
// Expressions are evaluated without variables or functions.
func DecodeHCL(data []byte, filename, listType, labelKey string) (*Object, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected HCL body type %T", filename, file.Body)
	}

	root := NewObject()
	if err := setAttributes(root, body.Attributes); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(body.Blocks))

	for _, block := range body.Blocks {
		if block.Type != listType {
			return nil, fmt.Errorf("%s: unexpected block type %q, expected %q", block.TypeRange, block.Type, listType)
		}

		if len(block.Labels) != 1 {
			return nil, fmt.Errorf("%s: block %q needs exactly one label, got %d", block.TypeRange, block.Type, len(block.Labels))
		}

		if len(block.Body.Blocks) > 0 {
			return nil, fmt.Errorf("%s: nested blocks are not supported", block.Body.Blocks[0].TypeRange)
		}

		if attr, ok := block.Body.Attributes[labelKey]; ok {
			return nil, fmt.Errorf("%s: attribute %q conflicts with the block label", attr.SrcRange, labelKey)
		}

		item := NewObject()
		item.Set(labelKey, block.Labels[0])

		if err := setAttributes(item, block.Body.Attributes); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if len(body.Blocks) > 0 {
		root.Set(listType, items)
	}

	return root, nil
}

func setAttributes(obj *Object, attrs hclsyntax.Attributes) error {
	ordered := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}

	slices.SortFunc(ordered, func(a, b *hclsyntax.Attribute) int {
		return cmp.Compare(a.SrcRange.Start.Byte, b.SrcRange.Start.Byte)
	})

	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}

		native, err := fromCty(val)
		if err != nil {
			return fmt.Errorf("%s: attribute %q: %w", attr.SrcRange, attr.Name, err)
		}

		obj.Set(attr.Name, native)
	}

	return nil
}

// fromCty converts a cty.Value into the document value model.
// Object and map keys come out in cty's lexical order.
func fromCty(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		return json.Number(v.AsBigFloat().Text('f', -1)), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list := make([]any, 0, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			native, err := fromCty(elem)
			if err != nil {
				return nil, err
			}

			list = append(list, native)
		}

		return list, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := NewObject()

		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()

			native, err := fromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("in key %q: %w", key.AsString(), err)
			}

			obj.Set(key.AsString(), native)
		}

		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
