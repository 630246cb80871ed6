package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		session *Session
		want    string
	}{
		{"home", "/", &Session{}, PathHome},
		{"unknown path", "/blog", &Session{}, PathHome},
		{"admin without access", "/admin", &Session{}, PathHome},
		{"admin without session", "/admin", nil, PathHome},
		{"admin after shortcut", "/admin", &Session{SecretAccess: true}, PathAdmin},
		{"empty", "", &Session{SecretAccess: true}, PathHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path, tt.session))
		})
	}
}

func TestNewPicksSceneForResolvedPath(t *testing.T) {
	app := &App{Session: &Session{}}
	_, ok := New(PathAdmin, nil, app).(*HomeScene)
	assert.True(t, ok)

	app.Session.SecretAccess = true
	_, ok = New(PathAdmin, nil, app).(*AdminScene)
	assert.True(t, ok)
}
