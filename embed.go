package embedded

import "embed"

//go:embed "views"
var Views embed.FS

//go:embed "migrations/academy"
var AcademyMigrations embed.FS

//go:embed "migrations/auth"
var AuthMigrations embed.FS
