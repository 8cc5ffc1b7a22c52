package domain

// DefaultDescription é usada quando o produto não está no catálogo
const DefaultDescription = "No description available for this product."

// ProductCatalog mapeia o nome do produto para um texto descritivo fixo.
// É imutável: NewProductCatalog copia o mapa recebido.
type ProductCatalog struct {
	descriptions map[string]string
}

func NewProductCatalog(descriptions map[string]string) ProductCatalog {
	copied := make(map[string]string, len(descriptions))
	for name, description := range descriptions {
		copied[name] = description
	}
	return ProductCatalog{descriptions: copied}
}

// DefaultProductCatalog retorna o catálogo padrão de produtos
func DefaultProductCatalog() ProductCatalog {
	return NewProductCatalog(map[string]string{
		"Laptop":     "A high-performance portable computer suitable for business, education, and entertainment. Known for its versatility and computing power.",
		"Mouse":      "An essential input device designed for precision and comfort. Features ergonomic design and responsive tracking.",
		"Keyboard":   "A durable and responsive keyboard for efficient typing. Ideal for office work or gaming setups.",
		"Monitor":    "High-resolution display screen providing clear and vibrant visuals. essential for desktop computing and dual-screen setups.",
		"Headphones": "Premium audio device offering immersive sound quality. Great for music, calls, and focusing in noisy environments.",
	})
}

// Describe retorna a descrição do produto ou DefaultDescription
func (c ProductCatalog) Describe(product string) string {
	if description, ok := c.descriptions[product]; ok {
		return description
	}
	return DefaultDescription
}

func (c ProductCatalog) Len() int {
	return len(c.descriptions)
}
