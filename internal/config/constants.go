package config

// Base application details
const AppName = "undobuf"
const DefaultConfigFileName = "config.toml" // Main config file

// Editor defaults
const DefaultMaxHistory = 0 // Unlimited
const DefaultStrictReplace = false
const SystemClipboard = false
