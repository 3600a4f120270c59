// controllers/queries.go
package controllers

// runQueries executes read queries in order and stops at the first failure.
// Aggregation handlers either get every figure or answer with a 500; a
// failed query must never leak zeros into an otherwise real payload.
func runQueries(queries ...func() error) error {
	for _, query := range queries {
		if err := query(); err != nil {
			return err
		}
	}
	return nil
}
