package products

// SampleCatalog is inserted by the Seeder into an empty table. Rows are listed in
// insertion order, so the last entry receives the highest id.
func SampleCatalog() []Product {
	return []Product{
		{Name: "English Saddle Premium", Category: "Saddles", Price: 899.99, Quantity: 12, Description: "High-quality leather English saddle, adjustable stirrups, multiple sizes", Image: "🏇"},
		{Name: "Western Saddle Classic", Category: "Saddles", Price: 1299.99, Quantity: 8, Description: "Hand-tooled leather Western saddle with silver accents", Image: "🤠"},
		{Name: "Dressage Saddle Pro", Category: "Saddles", Price: 1499.99, Quantity: 5, Description: "Professional dressage saddle, deep seat, extended billets", Image: "🏇"},
		{Name: "Leather Riding Boots", Category: "Footwear", Price: 249.99, Quantity: 35, Description: "Premium leather tall boots, waterproof, reinforced heel", Image: "👢"},
		{Name: "Paddock Boots", Category: "Footwear", Price: 129.99, Quantity: 48, Description: "Comfortable paddock boots, elastic side panels, lace-up", Image: "👞"},
		{Name: "Riding Helmet Safety Pro", Category: "Safety Gear", Price: 179.99, Quantity: 42, Description: "SEI-certified, adjustable fit, ventilated design", Image: "🪖"},
		{Name: "Safety Vest", Category: "Safety Gear", Price: 159.99, Quantity: 28, Description: "Impact-absorbing protective vest, adjustable straps", Image: "🦺"},
		{Name: "Leather Riding Gloves", Category: "Apparel", Price: 45.99, Quantity: 67, Description: "Flexible leather gloves, reinforced palm, touchscreen compatible", Image: "🧤"},
		{Name: "Breeches Competition", Category: "Apparel", Price: 89.99, Quantity: 55, Description: "Professional riding breeches, knee patches, multiple colors", Image: "👖"},
		{Name: "Saddle Pad All-Purpose", Category: "Tack", Price: 59.99, Quantity: 73, Description: "Quilted cotton saddle pad, moisture-wicking, machine washable", Image: "🎯"},
		{Name: "Bridle Leather Complete", Category: "Tack", Price: 179.99, Quantity: 22, Description: "Premium leather bridle with reins, brass hardware", Image: "🐴"},
		{Name: "Horse Blanket Medium", Category: "Horse Care", Price: 119.99, Quantity: 31, Description: "Waterproof turnout blanket, 200g fill, tail strap", Image: "🧥"},
		{Name: "Fly Mask UV Protection", Category: "Horse Care", Price: 34.99, Quantity: 95, Description: "Mesh fly mask with UV protection, comfortable fit", Image: "😎"},
		{Name: "Grooming Kit Complete", Category: "Horse Care", Price: 49.99, Quantity: 58, Description: "8-piece grooming set with brushes, hoof pick, carrying case", Image: "🧹"},
		{Name: "Hoof Pick with Brush", Category: "Horse Care", Price: 12.99, Quantity: 125, Description: "Durable hoof pick with stiff brush, ergonomic handle", Image: "🔧"},
		{Name: "Lead Rope Heavy Duty", Category: "Tack", Price: 24.99, Quantity: 89, Description: "10ft lead rope with panic snap, weather-resistant", Image: "🪢"},
		{Name: "Riding Crop", Category: "Training", Price: 18.99, Quantity: 104, Description: "Flexible riding crop, leather grip, wrist loop", Image: "🏏"},
		{Name: "Lunging Whip", Category: "Training", Price: 39.99, Quantity: 45, Description: "Professional lunging whip with long lash, balanced design", Image: "〰️"},
		{Name: "Bit Snaffle Stainless", Category: "Tack", Price: 54.99, Quantity: 62, Description: "Stainless steel snaffle bit, smooth mouthpiece, various sizes", Image: "⭕"},
		{Name: "Stirrups Safety Release", Category: "Tack", Price: 79.99, Quantity: 38, Description: "Safety stirrups with quick-release mechanism, stainless steel", Image: "🔄"},
	}
}
