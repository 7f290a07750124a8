package config

type SettingsInitError struct {
	msg string
}

func (e *SettingsInitError) Error() string {
	return e.msg
}
