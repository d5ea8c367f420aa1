package common

type Module string

const (
	ModuleRWA Module = "rwa"
)

func (m Module) String() string {
	return string(m)
}
