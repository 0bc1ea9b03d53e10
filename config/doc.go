// Package config resolves library configuration from explicit values,
// config files, and the process environment.
//
// Credential resolution follows a strict precedence: an explicitly supplied
// key wins, then the ASSEMBLYAI_API_KEY environment variable, then the
// base64-encoded ASSEMBLY_AI_KEY variable. File configuration is loaded with
// viper (json or yaml) and .env files are loaded with godotenv.
package config
