package common

// AppName is the default application name. It prefixes the client's
// persisted store keys and names the default database files.
const AppName = "mindmate"

// DefaultCollection is the path segment of the combined login-or-register route.
const DefaultCollection = "nodes"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72
