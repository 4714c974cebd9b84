package inspection

import "sync"

// AsyncRunner ejecuta cada tarea en su propia goroutine y permite esperar a las pendientes
// durante el apagado.
type AsyncRunner struct {
	wg sync.WaitGroup
}

// NewAsyncRunner construye el runner.
func NewAsyncRunner() *AsyncRunner {
	return &AsyncRunner{}
}

// Go lanza fn en una goroutine.
func (r *AsyncRunner) Go(fn func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn()
	}()
}

// Wait bloquea hasta que terminen todas las tareas lanzadas.
func (r *AsyncRunner) Wait() {
	r.wg.Wait()
}
