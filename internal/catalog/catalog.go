// Package catalog holds the static product list the assistant is grounded on.
//
// The catalog is read once at startup and never mutated afterwards, so the
// slices and strings it hands out are safe to share between requests.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PriceOnRequest is the sentinel used instead of a number for products
// whose price is only quoted on request.
const PriceOnRequest = "Preço sob consulta"

//go:embed products.yaml
var defaultCatalog []byte

// Entry is one featured product.
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Category    string `yaml:"category" json:"category"`
	Price       string `yaml:"price" json:"price"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image,omitempty" json:"image,omitempty"`
}

type file struct {
	Products []Entry `yaml:"products"`
}

// Default returns the built-in featured products.
func Default() ([]Entry, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file with the same layout as the
// built-in one.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) ([]Entry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}
	for i, p := range f.Products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if strings.TrimSpace(p.Price) == "" {
			f.Products[i].Price = PriceOnRequest
		}
	}
	return f.Products, nil
}

// Format renders the catalog as one line per product, in catalog order.
func Format(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		desc := strings.TrimRight(strings.TrimSpace(e.Description), ".")
		lines = append(lines, fmt.Sprintf("- %s (%s): %s. Preço: %s.", e.Name, e.Category, desc, e.Price))
	}
	return strings.Join(lines, "\n")
}

// SystemInstruction embeds the formatted catalog into the assistant's
// standing instructions.
func SystemInstruction(catalogText string) string {
	return fmt.Sprintf(`Você é um assistente virtual especialista e amigável da "Click & Connect", uma loja de eletrônicos.
Sua principal função é ajudar os clientes a encontrar os melhores produtos para suas necessidades.
Seja sempre educado, prestativo e use uma linguagem clara.

CRÍTICO: Você DEVE basear suas respostas e recomendações APENAS nos produtos da lista abaixo. Não invente produtos ou especificações.

CATÁLOGO DE PRODUTOS DISPONÍVEIS:
%s

Se o cliente perguntar sobre algo que não está na lista, informe que no momento você só tem informações sobre os produtos em destaque e pergunte se ele tem interesse em algum deles.`, catalogText)
}
