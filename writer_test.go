package streamjson

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDirectChildBuilders(t *testing.T) {
	buf := NewBytes(128)
	obj := New(buf).Object()
	bed := obj.ObjectField("bed")
	bed.Field("cozy", true)
	bed.Field("wear_and_tear", 2.5)
	bed.End()
	naps := obj.ArrayField("naps")
	spots := naps.AddArray()
	spots.Extend("sofa", "sill")
	spots.End()
	count := naps.AddObject()
	count.Field("today", 5)
	count.End()
	naps.End()
	obj.End()
	require.Equal(t, `{"bed":{"cozy":true,"wear_and_tear":2.5},"naps":[["sofa","sill"],{"today":5}]}`, buf.String())
}

func TestDeepNesting(t *testing.T) {
	const depth = 40
	buf := NewBytes(256)
	arr := New(buf).Array()
	open := []*ArrayWriter{arr}
	for i := 1; i < depth; i++ {
		open = append(open, open[len(open)-1].AddArray())
	}
	open[len(open)-1].Add(0)
	for i := len(open) - 1; i >= 0; i-- {
		open[i].End()
	}
	want := strings.Repeat("[", depth) + "0" + strings.Repeat("]", depth)
	require.Equal(t, want, buf.String())
}

func TestExtendMixedValues(t *testing.T) {
	buf := NewBytes(64)
	arr := New(buf).Array()
	arr.Extend(1, "two", 3.5, nil, true)
	arr.End()
	require.Equal(t, `[1,"two",3.5,null,true]`, buf.String())
}

const yamlFixture = `
license:
  name: MIT
  url: https://example.com/mit
repository: cats/catalogue
entries:
  - title: Miso
    indoor: true
    weight: 3.75
    toys: [mouse, ball]
  - title: Nori
    indoor: false
    weight: 4.5
    toys: []
notes: null
`

// writeYAMLNode mirrors an ordered YAML document into JSON through the
// builder API, exercising the recursive callback path.
func writeYAMLNode(v *ValueWriter, n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode:
		writeYAMLNode(v, n.Content[0])
	case yaml.MappingNode:
		obj := v.Object()
		for i := 0; i < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			obj.ComplexField(key.Value, func(v *ValueWriter) {
				writeYAMLNode(v, val)
			})
		}
	case yaml.SequenceNode:
		arr := v.Array()
		for _, item := range n.Content {
			arr.AddComplex(func(v *ValueWriter) {
				writeYAMLNode(v, item)
			})
		}
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			v.Write(nil)
		case "!!bool":
			b, _ := strconv.ParseBool(n.Value)
			v.Write(b)
		case "!!int":
			i, _ := strconv.ParseInt(n.Value, 10, 64)
			v.Write(i)
		case "!!float":
			f, _ := strconv.ParseFloat(n.Value, 64)
			v.Write(f)
		default:
			v.Write(n.Value)
		}
	}
}

func TestOrderedDocumentFromYAML(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(yamlFixture), &root))

	buf := NewBytes(512)
	obj := New(buf).Object()
	obj.ComplexField("doc", func(v *ValueWriter) {
		writeYAMLNode(v, &root)
	})
	obj.End()

	want := `{"doc":{` +
		`"license":{"name":"MIT","url":"https://example.com/mit"},` +
		`"repository":"cats/catalogue",` +
		`"entries":[` +
		`{"title":"Miso","indoor":true,"weight":3.75,"toys":["mouse","ball"]},` +
		`{"title":"Nori","indoor":false,"weight":4.5,"toys":[]}` +
		`],` +
		`"notes":null}}`
	require.Equal(t, want, buf.String())
}
