package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/idursun/scened/internal/commands"
)

const (
	cmdNextLayer   = "next_layer"
	cmdPrevLayer   = "prev_layer"
	cmdToggleLayer = "toggle_layer"
	cmdLayerUp     = "layer_up"
	cmdLayerDown   = "layer_down"
	cmdClearLayer  = "clear_layer"
	cmdResetObject = "reset_object"
	cmdZoomReset   = "zoom_reset"
	cmdPanReset    = "pan_reset"
	cmdFocus       = "focus_selection"
	cmdTogglePanel = "toggle_panel"
)

var errNoLayer = errors.New("no layer selected")

func (m *Model) registerBuiltins() error {
	builtins := []commands.Command{
		{
			Name:    cmdNextLayer,
			Text:    "Select the layer in front",
			Enabled: m.hasLayers,
			Handler: func(context.Context) error { return m.cycleLayer(1) },
		},
		{
			Name:    cmdPrevLayer,
			Text:    "Select the layer behind",
			Enabled: m.hasLayers,
			Handler: func(context.Context) error { return m.cycleLayer(-1) },
		},
		{
			Name:    cmdToggleLayer,
			Text:    "Show or hide the selected layer",
			Enabled: m.hasSelectedLayer,
			Handler: func(context.Context) error {
				if !m.hasSelectedLayer() {
					return errNoLayer
				}
				m.toggleLayer(m.selectedLayer)
				return nil
			},
		},
		{
			Name: cmdLayerUp,
			Text: "Move the selected layer to the front by one",
			Enabled: func() bool {
				pos := m.scene.Layout.LayerPosition(m.selectedLayer)
				return pos >= 0 && pos < m.scene.Layout.LayerCount()-1
			},
			Handler: func(context.Context) error { return m.swapSelectedLayer(1) },
		},
		{
			Name:    cmdLayerDown,
			Text:    "Move the selected layer to the back by one",
			Enabled: func() bool { return m.scene.Layout.LayerPosition(m.selectedLayer) > 0 },
			Handler: func(context.Context) error { return m.swapSelectedLayer(-1) },
		},
		{
			Name:    cmdClearLayer,
			Text:    "Remove every instance on the selected layer",
			Enabled: m.hasSelectedLayer,
			Handler: func(context.Context) error {
				if !m.hasSelectedLayer() {
					return errNoLayer
				}
				if m.selected != nil && m.selected.Layer() == m.selectedLayer {
					m.deselect()
				}
				n := m.scene.Instances.RemoveInstancesOnLayer(m.selectedLayer)
				m.status.SetMessage(fmt.Sprintf("removed %d instances from %s", n, m.selectedLayer))
				return nil
			},
		},
		{
			Name:    cmdResetObject,
			Text:    "Rebuild the drawables of the selected object",
			Enabled: m.hasSelection,
			Handler: func(context.Context) error {
				if m.selected == nil {
					return errors.New("no instance selected")
				}
				m.renderer.ResetInstanceRenderersFor(m.selected.ObjectName)
				return nil
			},
		},
		{
			Name: cmdZoomReset,
			Text: "Reset zoom",
			Handler: func(context.Context) error {
				m.scene.View.SetZoom(m.config.UI.Zoom)
				return nil
			},
		},
		{
			Name: cmdPanReset,
			Text: "Move the camera back to where it started",
			Handler: func(context.Context) error {
				m.scene.View.OffsetX = m.homeX
				m.scene.View.OffsetY = m.homeY
				return nil
			},
		},
		{
			Name:    cmdFocus,
			Text:    "Centre the camera on the selected instance",
			Enabled: m.hasSelection,
			Handler: func(context.Context) error {
				if m.selected == nil {
					return errors.New("no instance selected")
				}
				m.focus(m.selected)
				return nil
			},
		},
		{
			Name: cmdTogglePanel,
			Text: "Show or hide the layers panel",
			Handler: func(context.Context) error {
				m.showPanel = !m.showPanel
				return nil
			},
		},
	}

	var errs []error
	for _, cmd := range builtins {
		if err := m.manager.Register(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Model) hasLayers() bool {
	return m.scene.Layout.LayerCount() > 0
}

func (m *Model) hasSelectedLayer() bool {
	_, ok := m.scene.Layout.Layer(m.selectedLayer)
	return ok
}

func (m *Model) hasSelection() bool {
	return m.selected != nil
}

// cycleLayer moves the layer selection by delta, wrapping around.
func (m *Model) cycleLayer(delta int) error {
	count := m.scene.Layout.LayerCount()
	if count == 0 {
		return errNoLayer
	}
	pos := m.scene.Layout.LayerPosition(m.selectedLayer)
	if pos < 0 {
		pos = 0
	} else {
		pos = ((pos+delta)%count + count) % count
	}
	layer, _ := m.scene.Layout.LayerAt(pos)
	m.selectLayer(layer.Name())
	return nil
}

func (m *Model) swapSelectedLayer(delta int) error {
	pos := m.scene.Layout.LayerPosition(m.selectedLayer)
	if pos < 0 {
		return errNoLayer
	}
	if !m.scene.Layout.SwapLayers(pos, pos+delta) {
		return fmt.Errorf("layer %q cannot move further", m.selectedLayer)
	}
	return nil
}
