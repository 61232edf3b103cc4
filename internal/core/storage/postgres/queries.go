package postgres

// SQL for the users and shop_products tables.

const (
	productColumns = `id, name, category, image_url, link_url, created_by, created_at, updated_at`

	userColumns = `id, name, email, password, role, created_at, updated_at`

	// queryCreateProductsTable mirrors migration 000002 so the catalog can bootstrap itself
	// on databases where migrations were never applied.
	queryCreateProductsTable = `
		CREATE TABLE IF NOT EXISTS shop_products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(64) NOT NULL,
			image_url TEXT NOT NULL,
			link_url TEXT NOT NULL,
			created_by INTEGER REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`

	queryCreateProductsCategoryIndex = `
		CREATE INDEX IF NOT EXISTS idx_shop_products_category ON shop_products (category)
	`

	queryCountProducts = `SELECT COUNT(*) FROM shop_products`

	// querySeedProductsPrefix is completed by buildSeedQuery with one VALUES tuple per row.
	// The NOT EXISTS guard keeps a second instance from seeding a table that was filled
	// between its count and its insert.
	querySeedProductsPrefix = `
		INSERT INTO shop_products (name, category, image_url, link_url)
		SELECT seed.name, seed.category, seed.image_url, seed.link_url
		FROM (VALUES `

	querySeedProductsSuffix = `) AS seed (name, category, image_url, link_url)
		WHERE NOT EXISTS (SELECT 1 FROM shop_products)`

	queryListProducts = `
		SELECT ` + productColumns + `
		FROM shop_products
		ORDER BY category ASC, created_at DESC, id DESC
	`

	queryInsertProduct = `
		INSERT INTO shop_products (name, category, image_url, link_url, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	queryDeleteProduct = `
		DELETE FROM shop_products
		WHERE id = $1
		RETURNING ` + productColumns

	queryUsersTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'users'
		)
	`

	queryInsertUser = `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	queryGetUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	queryGetUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1
	`
)
