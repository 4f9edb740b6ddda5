package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog_ISO88591(t *testing.T) {
	// "Electrónica" codificado en Latin-1: ó = 0xF3.
	raw := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<catalogo><categorias><categoria nombre=\"Electr\xf3nica\"/></categorias></catalogo>")

	c, err := decodeCatalog(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, c.Categorias, 1)
	assert.Equal(t, "Electrónica", c.Categorias[0].Nombre)
}

func TestWriteSQL(t *testing.T) {
	c := &catalogo{
		Categorias: []categoria{{Nombre: "Hogar"}, {Nombre: " "}, {Nombre: "Audio"}, {Nombre: "Hogar"}},
		Proveedores: []proveedor{
			{Nombre: "Distribuidora O'Brien", Email: "ventas@obrien.com"},
			{Nombre: ""},
		},
		Marcas: []marca{{Nombre: "Acme"}},
	}
	var buf bytes.Buffer
	cats, provs, brands := writeSQL(&buf, c)

	assert.Equal(t, 2, cats)
	assert.Equal(t, 1, provs)
	assert.Equal(t, 1, brands)

	sql := buf.String()
	assert.Less(t, strings.Index(sql, "('Audio')"), strings.Index(sql, "('Hogar')"), "categorías ordenadas")
	assert.Contains(t, sql, "'Distribuidora O''Brien', 'ventas@obrien.com', NULL, NULL, NULL, NULL")
	assert.Contains(t, sql, "VALUES ('Acme', NULL, NULL)")
	assert.Equal(t, 1, strings.Count(sql, "('Hogar')"))
}
