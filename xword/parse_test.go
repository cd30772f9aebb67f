package xword

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseStructure(t *testing.T) {
	is := is.New(t)
	g, err := ParseStructure(strings.NewReader("___\n##_\n##_"))
	is.NoErr(err)
	is.Equal(g.Width(), 3)
	is.Equal(g.Height(), 3)
	is.True(g.Open(0, 0))
	is.True(g.Open(2, 2))
	is.True(!g.Open(1, 0))
}

func TestParseStructureRaggedLines(t *testing.T) {
	is := is.New(t)
	// Short lines are padded with blocked cells on the right.
	g, err := ParseStructure(strings.NewReader("_\n___"))
	is.NoErr(err)
	is.Equal(g.Width(), 3)
	is.Equal(g.Height(), 2)
	is.True(g.Open(0, 0))
	is.True(!g.Open(0, 1))
	is.True(!g.Open(0, 2))
	is.True(g.Open(1, 2))
}

func TestParseStructureCRLF(t *testing.T) {
	is := is.New(t)
	g, err := ParseStructure(strings.NewReader("__\r\n__\r\n"))
	is.NoErr(err)
	is.Equal(g.Width(), 2)
	is.Equal(g.Height(), 2)
	is.True(g.Open(0, 1))
}

func TestParseStructureEmpty(t *testing.T) {
	is := is.New(t)
	_, err := ParseStructure(strings.NewReader(""))
	is.True(err != nil)
}

func TestGridOpenOutOfRange(t *testing.T) {
	is := is.New(t)
	g, err := ParseStructure(strings.NewReader("__"))
	is.NoErr(err)
	is.True(!g.Open(-1, 0))
	is.True(!g.Open(0, 2))
	is.True(!g.Open(1, 0))
}

func TestGridText(t *testing.T) {
	is := is.New(t)
	// Any non-underscore character blocks; the canonical text form always
	// uses '#'.
	g, err := ParseStructure(strings.NewReader("_X_\n___"))
	is.NoErr(err)
	is.Equal(g.Text(), "_#_\n___")
}

func TestNewGrid(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid([][]bool{{true, false}, {true}})
	is.NoErr(err)
	is.Equal(g.Width(), 2)
	is.Equal(g.Height(), 2)
	is.True(g.Open(1, 0))
	is.True(!g.Open(1, 1)) // padded

	_, err = NewGrid(nil)
	is.True(err != nil)
	_, err = NewGrid([][]bool{{}, {}})
	is.True(err != nil)
}
