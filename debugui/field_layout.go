package debugui

import "reflect"

type fieldInfo struct {
	name  string
	index int
}

// fieldLayout splits a struct's exported fields into scalars, shown on every
// frame, and grids (arrays and slices), which the inspector can hide.
type fieldLayout struct {
	scalars []fieldInfo
	grids   []fieldInfo
}

// all returns scalars followed by grids.
func (fl *fieldLayout) all() []fieldInfo {
	return append(fl.scalars[:len(fl.scalars):len(fl.scalars)], fl.grids...)
}

// layoutCache is only touched from the ebiten update goroutine.
type layoutCache map[reflect.Type]*fieldLayout

func (lc layoutCache) layout(t reflect.Type) *fieldLayout {
	if fl, ok := lc[t]; ok {
		return fl
	}

	fl := &fieldLayout{}
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}

			info := fieldInfo{name: field.Name, index: i}
			switch ft.Kind() {
			case reflect.Array, reflect.Slice:
				fl.grids = append(fl.grids, info)
			default:
				fl.scalars = append(fl.scalars, info)
			}
		}
	}

	lc[t] = fl
	return fl
}
