package input

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUnknownControl = errors.New("unknown control")
	ErrInvalidControl = errors.New("invalid control id")
)

// Action runs when a control is triggered. The returned text is surfaced to
// whoever pressed the control.
type Action func(ctx context.Context, control string) (string, error)

// Controller maps host-assigned control ids to actions.
type Controller struct {
	mu       sync.RWMutex
	bindings map[string]Action
}

func NewController() *Controller {
	return &Controller{bindings: map[string]Action{}}
}

func (c *Controller) Bind(id string, action Action) error {
	id = strings.TrimSpace(id)
	if id == "" || action == nil {
		return ErrInvalidControl
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[id] = action
	return nil
}

// Trigger runs the action bound to id. The action receives the bound id, not
// the raw input.
func (c *Controller) Trigger(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	c.mu.RLock()
	action, ok := c.bindings[id]
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	return action(ctx, id)
}

func (c *Controller) Controls() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings))
	for id := range c.bindings {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
