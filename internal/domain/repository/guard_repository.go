package repository

// GuardRepository define el puerto del guard operacional: un único booleano
// global que suspende todas las operaciones mutantes cuando está activo.
type GuardRepository interface {
	IsPaused() (bool, error)
	SetPaused(paused bool) error
}
