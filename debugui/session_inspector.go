package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetromino/game"
)

// SessionInspector lists every field of a session snapshot.
type SessionInspector struct {
	layouts   layoutCache
	showBoard bool
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{layouts: layoutCache{}}
}

func (si *SessionInspector) Render(snap game.Snapshot) {
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Show boards", &si.showBoard)
	imgui.Separator()

	val := reflect.ValueOf(snap)
	fl := si.layouts.layout(val.Type())
	fields := fl.scalars
	if si.showBoard {
		fields = fl.all()
	}
	for _, f := range fields {
		si.renderField(f.name, val.Field(f.index))
	}

	imgui.End()
}

func (si *SessionInspector) renderField(name string, val reflect.Value) {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, f := range si.layouts.layout(val.Type()).all() {
				si.renderField(f.name, val.Field(f.index))
			}
			imgui.TreePop()
		}

	case reflect.Array, reflect.Slice:
		// Boards and shapes print themselves as rows of cells.
		if stringer, ok := val.Interface().(fmt.Stringer); ok {
			if imgui.TreeNodeStr(name) {
				imgui.Text(stringer.String())
				imgui.TreePop()
			}
			return
		}
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
