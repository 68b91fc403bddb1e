//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// NotifierKind selects the messaging backend the digest is posted to
// ENUM(slack,telegram)
type NotifierKind string
