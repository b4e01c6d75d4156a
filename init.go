package calc

// Version of the calculator engine. Overridable at link time:
//
//	go build -ldflags "-X github.com/Jishnu-Palit/Calc-repo.Version=..."
var Version = "0.3.0"

// BuildDate is stamped at link time alongside Version.
var BuildDate = "unknown"
