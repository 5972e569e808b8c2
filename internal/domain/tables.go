package domain

var Tables = []interface{}{
	// Catalog
	&Product{},
	// Identity
	&User{},
}
