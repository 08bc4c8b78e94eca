package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects start/stop calls across services
type recorder struct {
	events []string
}

// recorded is a Lifecycle that logs its transitions into a recorder
type recorded struct {
	rec      *recorder
	name     string
	startErr error
}

func (l recorded) Start() error {
	l.rec.events = append(l.rec.events, "start:"+l.name)
	return l.startErr
}

func (l recorded) Stop() error {
	l.rec.events = append(l.rec.events, "stop:"+l.name)
	return nil
}

func (r *recorder) svc(name string, deps []string, startErr error) Service {
	return Wrap(name, deps, recorded{rec: r, name: name, startErr: startErr})
}

func TestHubStartsInDependencyOrder(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	require.NoError(t, h.Register(rec.svc("input", []string{"terminal"}, nil)))
	require.NoError(t, h.Register(rec.svc("audio", nil, nil)))
	require.NoError(t, h.Register(rec.svc("terminal", nil, nil)))

	require.NoError(t, h.StartAll())
	assert.Equal(t, []string{"start:audio", "start:terminal", "start:input"}, rec.events)
	assert.Equal(t, []string{"audio", "terminal", "input"}, h.Started())

	rec.events = nil
	h.StopAll()
	assert.Equal(t, []string{"stop:input", "stop:terminal", "stop:audio"}, rec.events)
	assert.Empty(t, h.Started())
}

func TestHubRollbackOnStartFailure(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	require.NoError(t, h.Register(rec.svc("terminal", nil, nil)))
	require.NoError(t, h.Register(rec.svc("input", []string{"terminal"}, errors.New("no hook"))))

	err := h.StartAll()
	require.Error(t, err)
	assert.ErrorContains(t, err, "service input start failed")
	assert.Equal(t, []string{"start:terminal", "start:input", "stop:terminal"}, rec.events)
	assert.Empty(t, h.Started())
}

func TestHubDuplicateRegistration(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	require.NoError(t, h.Register(rec.svc("audio", nil, nil)))
	assert.Error(t, h.Register(rec.svc("audio", nil, nil)))
}

func TestHubMissingDependency(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	require.NoError(t, h.Register(rec.svc("input", []string{"terminal"}, nil)))
	assert.ErrorContains(t, h.StartAll(), "unregistered service: terminal")
}

func TestHubCircularDependency(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	require.NoError(t, h.Register(rec.svc("a", []string{"b"}, nil)))
	require.NoError(t, h.Register(rec.svc("b", []string{"a"}, nil)))
	assert.ErrorContains(t, h.StartAll(), "circular dependency")
	assert.Empty(t, rec.events)
}

func TestWrapKeepsIdentity(t *testing.T) {
	rec := &recorder{}
	svc := rec.svc("input", []string{"display"}, nil)
	assert.Equal(t, "input", svc.Name())
	assert.Equal(t, []string{"display"}, svc.Dependencies())
	require.NoError(t, svc.Start())
	assert.Equal(t, []string{"start:input"}, rec.events)
}
