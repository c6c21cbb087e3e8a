package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/scened/internal/commands"
	"github.com/idursun/scened/internal/config"
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scene"
	"github.com/idursun/scened/internal/scene/layerrender"
	"github.com/idursun/scened/internal/ui/choose"
	"github.com/idursun/scened/internal/ui/common"
	"github.com/idursun/scened/internal/ui/layers"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
	"github.com/idursun/scened/internal/ui/status"
)

// Options is what the editor is built from. Manager, Logger and Now are
// optional.
type Options struct {
	Config  *config.Config
	Scene   *project.Scene
	Manager *commands.Manager
	Logger  *slog.Logger
	Now     func() time.Time
}

type Model struct {
	config    *config.Config
	scene     *project.Scene
	renderer  *scene.Renderer
	manager   *commands.Manager
	ctx       context.Context
	log       *slog.Logger
	now       func() time.Time
	homeX     float64
	homeY     float64
	panel     *layers.Model
	status    *status.Model
	menu      *choose.Model
	split     *layout.Split
	showPanel bool

	displayContext *render.DisplayContext
	width          int
	height         int
	contentBox     layout.Box
	canvasBox      layout.Box
	styles         styles

	selectedLayer string
	selected      *project.Instance
	hovered       *project.Instance
	pointer       pointerState
	splitDragging bool
	quitting      bool
}

type styles struct {
	canvas    lipgloss.Style
	selection lipgloss.Style
	hover     lipgloss.Style
}

// NewUI builds the editor model. The scene renderer it creates is destroyed
// when the user quits.
func NewUI(opts Options) (*Model, error) {
	if opts.Config == nil {
		return nil, errors.New("ui: config is required")
	}
	if opts.Scene == nil {
		return nil, errors.New("ui: scene is required")
	}
	if opts.Manager == nil {
		opts.Manager = commands.NewManager()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	common.DefaultPalette.Update(opts.Config.UI.Colors)
	if !opts.Scene.ZoomSet {
		opts.Scene.View.SetZoom(opts.Config.UI.Zoom)
	}

	m := &Model{
		config:    opts.Config,
		scene:     opts.Scene,
		manager:   opts.Manager,
		ctx:       commands.WithManager(context.Background(), opts.Manager),
		log:       opts.Logger,
		now:       opts.Now,
		homeX:     opts.Scene.View.OffsetX,
		homeY:     opts.Scene.View.OffsetY,
		panel:     layers.New(opts.Scene.Layout),
		status:    status.New(keys.hints()),
		showPanel: opts.Config.UI.PanelWidth > 0,
		split:     layout.NewSplit(opts.Config.UI.PanelWidth, false),
		styles: styles{
			canvas:    common.DefaultPalette.Get("canvas"),
			selection: common.DefaultPalette.Get("selection"),
			hover:     common.DefaultPalette.Get("hover"),
		},
	}

	renderer, err := scene.New(scene.Options{
		Project:          opts.Scene.Project,
		Layout:           opts.Scene.Layout,
		Instances:        opts.Scene.Instances,
		View:             opts.Scene.View,
		Callbacks:        m.callbacks(),
		NewLayerRenderer: layerrender.Factory(instanceStyles()),
	})
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}
	m.renderer = renderer

	if err := m.registerBuiltins(); err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}
	if err := m.manager.RegisterMacros(opts.Config.Commands); err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}

	if first, ok := opts.Scene.Layout.LayerAt(opts.Scene.Layout.LayerCount() - 1); ok {
		m.selectLayer(first.Name())
	}
	return m, nil
}

func instanceStyles() layerrender.Styles {
	base := common.DefaultPalette.Get("instance")
	return layerrender.Styles{
		Instance: base,
		Missing:  common.DefaultPalette.Get("instance missing"),
		ForObject: func(obj *project.Object) lipgloss.Style {
			if obj.Color == "" {
				return base
			}
			return base.Background(common.ParseColor(obj.Color))
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Renderer returns the scene renderer backing the canvas.
func (m *Model) Renderer() *scene.Renderer {
	return m.renderer
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil
	case tea.KeyPressMsg:
		if m.menu != nil {
			return m.menu.Update(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case choose.SelectedMsg:
		m.menu = nil
		m.execute(msg.Value)
		return nil
	case choose.CancelledMsg:
		m.menu = nil
		return nil
	case layers.SelectMsg:
		m.selectLayer(msg.Name)
		return nil
	case layers.ToggleMsg:
		m.toggleLayer(msg.Name)
		return nil
	case splitDragMsg:
		m.splitDragging = true
		m.split.DragTo(m.contentBox, msg.X, msg.Y)
		return nil
	case canvasClickMsg:
		m.deselect()
		return nil
	case canvasScrollMsg:
		if msg.Horizontal {
			m.scene.View.Pan(m.scene.View.ScaleToScene(float64(msg.Delta)), 0)
		} else if msg.Delta < 0 {
			m.scene.View.ZoomBy(zoomStep)
		} else {
			m.scene.View.ZoomBy(1 / zoomStep)
		}
		return nil
	}

	if m.menu != nil {
		return m.menu.Update(msg)
	}
	return m.panel.Update(msg)
}

const zoomStep = 1.25

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	step := m.scene.View.ScaleToScene(m.config.UI.PanStep)
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.PanLeft):
		m.scene.View.Pan(-step, 0)
	case key.Matches(msg, keys.PanRight):
		m.scene.View.Pan(step, 0)
	case key.Matches(msg, keys.PanUp):
		m.scene.View.Pan(0, -step/2)
	case key.Matches(msg, keys.PanDown):
		m.scene.View.Pan(0, step/2)
	case key.Matches(msg, keys.ZoomIn):
		m.scene.View.ZoomBy(zoomStep)
	case key.Matches(msg, keys.ZoomOut):
		m.scene.View.ZoomBy(1 / zoomStep)
	case key.Matches(msg, keys.NextLayer):
		m.execute(cmdNextLayer)
	case key.Matches(msg, keys.PrevLayer):
		m.execute(cmdPrevLayer)
	case key.Matches(msg, keys.ToggleLayer):
		m.execute(cmdToggleLayer)
	case key.Matches(msg, keys.Deselect):
		m.deselect()
	case key.Matches(msg, keys.Commands):
		m.openMenu()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	if !m.quitting {
		m.quitting = true
		m.renderer.Destroy()
	}
	return tea.Quit
}

func (m *Model) openMenu() {
	var options []choose.Option
	for _, cmd := range m.manager.Commands() {
		options = append(options, choose.Option{
			Value:    cmd.Name,
			Text:     cmd.Text,
			Disabled: !m.manager.IsEnabled(cmd.Name),
		})
	}
	m.menu = choose.New("Commands", options)
}

// execute runs a command and reports the outcome on the status line.
func (m *Model) execute(name string) {
	if err := m.manager.Execute(m.ctx, name); err != nil {
		m.log.Warn("command failed", "command", name, "err", err)
		m.status.SetError(err)
		return
	}
	m.log.Debug("command executed", "command", name)
}

func (m *Model) selectLayer(name string) {
	m.selectedLayer = name
	m.panel.SetSelected(name)
}

func (m *Model) toggleLayer(name string) {
	layer, ok := m.scene.Layout.Layer(name)
	if !ok {
		return
	}
	layer.SetVisible(!layer.Visible())
	if !layer.Visible() && m.selected != nil && m.selected.Layer() == name {
		m.deselect()
	}
}

func (m *Model) deselect() {
	m.selected = nil
}

func (m *Model) View() tea.View {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return tea.NewView("")
	}
	v := tea.NewView(m.renderFrame())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.WindowTitle = "scened - " + m.scene.Layout.Name
	return v
}

// renderFrame paints one frame: the scene is synced with the project first,
// then the canvas, the layers panel, the status line and the command list
// are drawn into a fresh display context.
func (m *Model) renderFrame() string {
	m.displayContext = render.NewDisplayContext()
	dl := m.displayContext

	screen := layout.NewBox(layout.Rect(0, 0, m.width, m.height))
	content, statusBox := screen.CutBottom(1)
	m.contentBox = content
	m.canvasBox = content
	var panelBox layout.Box
	if m.showPanel {
		m.canvasBox, panelBox = m.split.Apply(content)
	}

	m.renderer.Render()
	m.paintCanvas(dl)

	if m.showPanel {
		m.panel.ViewRect(dl, panelBox)
		dl.AddInteraction(m.split.Separator(content), splitDragMsg{}, render.InteractionDrag, render.ZPanel+1)
	}

	m.status.SetInfo(m.statusInfo())
	m.status.ViewRect(dl, statusBox)

	if m.menu != nil {
		m.menu.ViewRect(dl, screen)
	}

	buf := uv.NewScreenBuffer(m.width, m.height)
	dl.Render(buf)
	return strings.ReplaceAll(buf.Render(), "\r", "")
}

func (m *Model) statusInfo() status.Info {
	info := status.Info{Layer: m.selectedLayer, Zoom: m.scene.View.Zoom}
	if layer, ok := m.scene.Layout.Layer(m.selectedLayer); ok {
		info.LayerHidden = !layer.Visible()
	}
	if m.selected != nil {
		info.Instance = m.selected.ObjectName
	}
	return info
}

var _ tea.Model = (*wrapper)(nil)

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        tea.View
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() tea.View {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	return w.cachedFrame
}

// New returns the editor wrapped for a tea.Program, coalescing redraws to at
// most one per frame.
func New(opts Options) (tea.Model, error) {
	m, err := NewUI(opts)
	if err != nil {
		return nil, err
	}
	return &wrapper{ui: m}, nil
}
