package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rlink/cmd/rlink/commands"
	"go.trai.ch/rlink/internal/app"
	"go.trai.ch/rlink/internal/core/domain"
)

// fakeApp records the options the CLI resolves for the application layer.
type fakeApp struct {
	calls int
	opts  app.RunOptions
	err   error
}

func (f *fakeApp) Run(_ context.Context, opts app.RunOptions) error {
	f.calls++
	f.opts = opts
	return f.err
}

func TestEmit_ResolvesRHomeFromEnvironment(t *testing.T) {
	t.Setenv("R_HOME", "/opt/R")
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"emit"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, fake.calls)
	assert.Equal(t, "/opt/R", fake.opts.RHome)
	assert.Equal(t, "rlink.yaml", fake.opts.OptionsPath)
}

func TestEmit_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("R_HOME", "/opt/R")
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"emit", "--r-home", "/usr/local/R", "--config", "other.yaml"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/R", fake.opts.RHome)
	assert.Equal(t, "other.yaml", fake.opts.OptionsPath)
}

func TestEmit_EmptyEnvironmentPassedThrough(t *testing.T) {
	t.Setenv("R_HOME", "")
	fake := &fakeApp{err: domain.ErrRHomeNotSet}
	cli := commands.New(fake)
	cli.SetArgs([]string{"emit"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrRHomeNotSet)

	assert.Empty(t, fake.opts.RHome)
}

func TestEmit_RejectsPositionalArgs(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	cli.SetArgs([]string{"emit", "unexpected"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Zero(t, fake.calls)
}

func TestVersion(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "dev")
}

func TestRoot_Help(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	cli.SetArgs([]string{"--help"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fake.calls)
}
