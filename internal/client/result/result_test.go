package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type profile struct {
	Name   string
	Points int
}

func TestConstructors(t *testing.T) {
	p := Pending[int]()
	assert.Equal(t, StatusPending, p.Status())
	assert.True(t, p.IsPending())
	_, ok := p.Value()
	assert.False(t, ok)
	assert.Empty(t, p.Message())

	s := Succeeded(42)
	assert.Equal(t, StatusSucceeded, s.Status())
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Empty(t, s.Message())

	f := Failed[int]("Email and password cannot be empty")
	assert.Equal(t, StatusFailed, f.Status())
	_, ok = f.Value()
	assert.False(t, ok)
	assert.Equal(t, "Email and password cannot be empty", f.Message())

	var zero Result[int]
	assert.True(t, zero.IsZero())
	assert.Equal(t, "none", zero.Status().String())
}

func TestSucceeded_ValueIsACopy(t *testing.T) {
	src := profile{Name: "Sari", Points: 10}
	r := Succeeded(src)

	src.Points = 999

	got, _ := r.Value()
	assert.Equal(t, 10, got.Points)
}

func TestMatch_Exhaustive(t *testing.T) {
	render := func(r Result[profile]) string {
		return Match(r,
			func() string { return "spinner" },
			func(p profile) string { return "hello " + p.Name },
			func(msg string) string { return "error: " + msg },
		)
	}

	assert.Equal(t, "spinner", render(Pending[profile]()))
	assert.Equal(t, "spinner", render(Result[profile]{}))
	assert.Equal(t, "hello Sari", render(Succeeded(profile{Name: "Sari"})))
	assert.Equal(t, "error: boom", render(Failed[profile]("boom")))
}

func TestMap(t *testing.T) {
	name := func(p profile) string { return p.Name }

	got := Map(Succeeded(profile{Name: "Budi"}), name)
	v, ok := got.Value()
	assert.True(t, ok)
	assert.Equal(t, "Budi", v)

	assert.Equal(t, "nope", Map(Failed[profile]("nope"), name).Message())
	assert.True(t, Map(Pending[profile](), name).IsPending())
	assert.True(t, Map(Result[profile]{}, name).IsZero())
}

func TestString(t *testing.T) {
	assert.Equal(t, "pending", Pending[int]().String())
	assert.Equal(t, "succeeded(3)", Succeeded(3).String())
	assert.Equal(t, `failed("x")`, Failed[int]("x").String())
}
