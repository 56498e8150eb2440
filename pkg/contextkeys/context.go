package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key under which *gorm.DB is stored in the context.
const DBContextKey = contextKey("db")
