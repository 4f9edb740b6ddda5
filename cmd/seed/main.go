// seed genera el script SQL para poblar categorías, proveedores y marcas
// a partir de un XML exportado del catálogo.
//
// Uso: go run ./cmd/seed [ruta/catalogo.xml]
// Por defecto busca catalogo.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Categorias  []categoria `xml:"categorias>categoria"`
	Proveedores []proveedor `xml:"proveedores>proveedor"`
	Marcas      []marca     `xml:"marcas>marca"`
}

type categoria struct {
	Nombre string `xml:"nombre,attr"`
}

type proveedor struct {
	Nombre    string `xml:"nombre,attr"`
	Email     string `xml:"email,attr"`
	Telefono  string `xml:"telefono,attr"`
	Direccion string `xml:"direccion,attr"`
	Ciudad    string `xml:"ciudad,attr"`
	Provincia string `xml:"provincia,attr"`
}

type marca struct {
	Nombre      string `xml:"nombre,attr"`
	Logo        string `xml:"logo,attr"`
	Descripcion string `xml:"descripcion,attr"`
}

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	c, err := decodeCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	cats, provs, brands := writeSQL(out, c)
	fmt.Printf("Generado %s: %d categorías, %d proveedores, %d marcas\n", outPath, cats, provs, brands)
}

// decodeCatalog acepta UTF-8 e ISO-8859-1 (exportaciones de hojas de cálculo antiguas).
func decodeCatalog(r io.Reader) (*catalogo, error) {
	var c catalogo
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// writeSQL escribe los INSERT idempotentes y devuelve cuántas filas de cada tabla generó.
func writeSQL(out io.Writer, c *catalogo) (cats, provs, brands int) {
	fmt.Fprintln(out, "-- Catálogo base: categorías, proveedores y marcas")
	fmt.Fprintln(out, "-- Generado por cmd/seed")
	fmt.Fprintln(out)

	names := uniqueNames(c.Categorias)
	if len(names) > 0 {
		fmt.Fprintln(out, "-- 1. Categorías")
		fmt.Fprintln(out, "INSERT INTO categories (name) VALUES")
		for i, n := range names {
			sep := ","
			if i == len(names)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  (%s)%s\n", quote(n), sep)
		}
		fmt.Fprintln(out, "ON CONFLICT (name) DO NOTHING;")
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "-- 2. Proveedores")
	for _, p := range c.Proveedores {
		name := strings.TrimSpace(p.Nombre)
		if name == "" {
			continue
		}
		fmt.Fprintln(out, "INSERT INTO providers (name, email, phone, address, city, province)")
		fmt.Fprintf(out, "VALUES (%s, %s, %s, %s, %s, %s)\n",
			quote(name), nullable(p.Email), nullable(p.Telefono), nullable(p.Direccion), nullable(p.Ciudad), nullable(p.Provincia))
		fmt.Fprintln(out, "ON CONFLICT (name) DO UPDATE SET email = EXCLUDED.email, phone = EXCLUDED.phone,")
		fmt.Fprintln(out, "  address = EXCLUDED.address, city = EXCLUDED.city, province = EXCLUDED.province;")
		provs++
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "-- 3. Marcas")
	for _, m := range c.Marcas {
		name := strings.TrimSpace(m.Nombre)
		if name == "" {
			continue
		}
		fmt.Fprintln(out, "INSERT INTO brands (name, logo, description)")
		fmt.Fprintf(out, "VALUES (%s, %s, %s)\n", quote(name), nullable(m.Logo), nullable(m.Descripcion))
		fmt.Fprintln(out, "ON CONFLICT (name) DO UPDATE SET logo = EXCLUDED.logo, description = EXCLUDED.description;")
		brands++
	}
	return len(names), provs, brands
}

// uniqueNames nombres de categoría sin vacíos ni repetidos, ordenados para salida estable.
func uniqueNames(cs []categoria) []string {
	seen := make(map[string]struct{}, len(cs))
	var out []string
	for _, c := range cs {
		n := strings.TrimSpace(c.Nombre)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullable(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NULL"
	}
	return quote(s)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
