package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrCommandDisabled  = errors.New("command disabled")
	ErrDuplicateCommand = errors.New("command already registered")
)

// Command is a named action the editor can run from the command list or a macro.
type Command struct {
	Name string
	Text string
	// Enabled reports whether the command can run right now. Nil means always.
	Enabled func() bool
	Handler func(ctx context.Context) error
}

func (c Command) enabled() bool {
	return c.Enabled == nil || c.Enabled()
}

// Manager holds the registered commands in registration order.
type Manager struct {
	mu       sync.RWMutex
	commands []Command
	byName   map[string]int
	logger   *slog.Logger
}

func NewManager() *Manager {
	return &Manager{
		byName: make(map[string]int),
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger routes execution diagnostics to l.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	m.mu.Lock()
	m.logger = l
	m.mu.Unlock()
}

func (m *Manager) Register(cmd Command) error {
	if cmd.Name == "" {
		return errors.New("command name is required")
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %q: handler is required", cmd.Name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[cmd.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, cmd.Name)
	}
	m.byName[cmd.Name] = len(m.commands)
	m.commands = append(m.commands, cmd)
	return nil
}

// Deregister removes the command and reports whether it was registered.
func (m *Manager) Deregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.byName[name]
	if !ok {
		return false
	}
	m.commands = append(m.commands[:idx], m.commands[idx+1:]...)
	delete(m.byName, name)
	for i := idx; i < len(m.commands); i++ {
		m.byName[m.commands[i].Name] = i
	}
	return true
}

func (m *Manager) Command(name string) (Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, ok := m.byName[name]
	if !ok {
		return Command{}, false
	}
	return m.commands[idx], true
}

// Commands returns a snapshot of the registered commands in registration order.
func (m *Manager) Commands() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Command, len(m.commands))
	copy(out, m.commands)
	return out
}

// IsEnabled reports whether name is registered and currently enabled.
func (m *Manager) IsEnabled(name string) bool {
	cmd, ok := m.Command(name)
	return ok && cmd.enabled()
}

// Execute runs the named command. The manager is available to the handler
// through FromContext.
func (m *Manager) Execute(ctx context.Context, name string) error {
	cmd, ok := m.Command(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if !cmd.enabled() {
		return fmt.Errorf("%w: %q", ErrCommandDisabled, name)
	}
	m.mu.RLock()
	log := m.logger
	m.mu.RUnlock()

	log.Debug("executing command", "name", name)
	if err := cmd.Handler(WithManager(ctx, m)); err != nil {
		log.Warn("command failed", "name", name, "err", err)
		return fmt.Errorf("command %q: %w", name, err)
	}
	return nil
}
