package schema

// Models lists every table owned by the catalog, in migration order
func Models() []interface{} {
	return []interface{}{
		&Category{},
		&NFTCategory{},
		&ViewEvent{},
		&Follow{},
		&Like{},
		&Profile{},
	}
}
