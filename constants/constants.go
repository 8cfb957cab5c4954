package constants

const SqliteDbFileName = "portfolio.db"
const SecretsFileName = ".portfolio0"
const ConfigFileName = "config.yml"

const APIBasePath = "/api"

const PortEnv = "PORTFOLIO0_PORT"
const DBFilePathEnv = "PORTFOLIO0_DB_FILE_PATH"
const SiteURLEnv = "PORTFOLIO0_SITE_URL"
const CacheTTLSecondsEnv = "PORTFOLIO0_CACHE_TTL_SECONDS"
const LogLevelEnv = "PORTFOLIO0_LOG_LEVEL"
const RevalidationSecretEnv = "PORTFOLIO0_REVALIDATION_SECRET"
const BuildHookURLEnv = "PORTFOLIO0_BUILD_HOOK_URL"

const DefaultPort = "9121"
const DefaultCacheTTLSeconds = 3600

// RevalidationSecretHeader authenticates server-to-server revalidation requests.
const RevalidationSecretHeader = "x-revalidation-secret"

// DefaultRevalidationPaths are the top-level pages invalidated when a
// revalidation request names no path and no tag.
var DefaultRevalidationPaths = []string{"/", "/about", "/projects", "/blog", "/contact"}
