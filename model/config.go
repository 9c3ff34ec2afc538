package model

// --- SYSTEM CONFIG ---
// EnvConfig holds the runtime settings for the frontend process.
type EnvConfig struct {
	Port        string `json:"port"`
	ApiBaseUrl  string `json:"apiBaseUrl"`
	Environment string `json:"environment"`
}
