package cart

// Product is a purchasable item from the conservation shop.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Catalog is the static shop inventory. Products are not server-backed.
var Catalog = []Product{
	{
		ID:          "1",
		Name:        "Conservation T-Shirt",
		Price:       29.99,
		Image:       "/assets/product-tshirt.jpg",
		Description: "Eco-friendly cotton t-shirt with woodland logo. Comfortable and sustainable.",
	},
	{
		ID:          "2",
		Name:        "Earth Hoodie",
		Price:       59.99,
		Image:       "/assets/product-hoodie.jpg",
		Description: "Warm organic cotton hoodie perfect for outdoor adventures.",
	},
	{
		ID:          "3",
		Name:        "Forest Cap",
		Price:       24.99,
		Image:       "/assets/product-cap.jpg",
		Description: "Embroidered baseball cap with tree logo. One size fits all.",
	},
	{
		ID:          "4",
		Name:        "Trail Pants",
		Price:       79.99,
		Image:       "/assets/product-tshirt.jpg",
		Description: "Durable outdoor pants designed for hiking and conservation work.",
	},
	{
		ID:          "5",
		Name:        "Nature Tote Bag",
		Price:       19.99,
		Image:       "/assets/product-cap.jpg",
		Description: "Reusable canvas tote bag for everyday use. Reduce plastic waste!",
	},
	{
		ID:          "6",
		Name:        "Conservation Mug",
		Price:       14.99,
		Image:       "/assets/product-hoodie.jpg",
		Description: "Insulated travel mug to keep your beverages hot or cold.",
	},
}

// FindProduct looks a product up by id.
func FindProduct(id string) (Product, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
