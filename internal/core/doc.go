// Package core provides the conversion service for the font generator.
//
// The service sits between the presentation layers (web form, JSON API,
// CLI) and the mapping engine in package style. It has no UI dependencies
// and can be used by any frontend.
//
// # Conversion
//
// [Service.Convert] runs one input through every registered style in
// display order and keeps only the styles that changed the text:
//
//	svc := core.NewService(style.Default, cfg)
//	conv, err := svc.Convert(ctx, "Hello")
//	for _, r := range conv.Results {
//	    fmt.Println(r.Name, r.Text)
//	}
//
// Dropping unchanged results is a presentation decision made here, not in
// the engine, which stays a total function.
//
// # Failure Isolation
//
// A style that returns an error or panics is logged, recorded in
// [Conversion.Failed] and skipped. The remaining styles still run.
//
// # Concurrency
//
// A [Limiter] caps conversions in flight (CONVERT_MAX_CONCURRENT). Callers
// that cannot get a slot within CONVERT_MAX_WAIT receive
// [ErrTooManyConversions]. [Service.WaitForConversions] drains it on
// shutdown.
//
// # Error Handling
//
// Errors map to user-friendly messages with [MapError]; see
// error_messages.go for the code reference.
package core
