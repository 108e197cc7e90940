package codecs_test

import (
	"testing"

	"github.com/AndrewDonelson/codecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace_RegisterAndLoad(t *testing.T) {
	ns := codecs.NewNamespace()
	require.NoError(t, ns.Register(demoModule("demo")))

	m, err := ns.Load(codecs.ModulePrefix + "demo")
	require.NoError(t, err)
	assert.Equal(t, codecs.ModulePrefix+"demo", m.Path)
	assert.Equal(t, 1, ns.Len())
}

func TestNamespace_LoadNotFound(t *testing.T) {
	ns := codecs.NewNamespace()
	_, err := ns.Load(codecs.ModulePrefix + "missing")
	assert.ErrorIs(t, err, codecs.ErrModuleNotFound)
}

func TestNamespace_DuplicateRegistration(t *testing.T) {
	ns := codecs.NewNamespace()
	require.NoError(t, ns.Register(demoModule("demo")))
	err := ns.Register(demoModule("demo"))
	assert.ErrorIs(t, err, codecs.ErrDuplicateModule)
}

func TestNamespace_Replace(t *testing.T) {
	ns := codecs.NewNamespace()
	require.NoError(t, ns.Register(demoModule("demo")))

	replacement := demoModule("demo", "d2")
	require.NoError(t, ns.Replace(replacement))

	m, err := ns.Load(codecs.ModulePrefix + "demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"d2"}, m.Aliases)
	assert.Equal(t, 1, ns.Len())
}

func TestNamespace_InvalidModule(t *testing.T) {
	ns := codecs.NewNamespace()
	assert.ErrorIs(t, ns.Register(nil), codecs.ErrInvalidModule)
	assert.ErrorIs(t, ns.Register(&codecs.Module{}), codecs.ErrInvalidModule)
	assert.ErrorIs(t, ns.Replace(nil), codecs.ErrInvalidModule)
}
