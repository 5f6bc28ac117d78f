/*
Package simulator stands in for a remote payments backend. Every operation
sleeps a randomized delay, independently rolls a configurable failure chance
before any business logic, and then fabricates a fresh response record.
Nothing is persisted and no operation reads another's result: concurrent
calls are fully independent and complete in delay order.

Usage:

	svc := simulator.NewService(simulator.DefaultConfig(), simulator.DefaultProfile(), logger)

	user, err := svc.Login(ctx, "9876543210", "123456")

	tx, err := svc.ProcessPayment(ctx, simulator.PaymentInput{
	    Amount:    decimal.NewFromInt(500),
	    Recipient: simulator.Recipient{Type: simulator.RecipientTypeAddress, Value: "priya.patel@paytm"},
	})

Determinism in tests is achieved by injecting the random source, sleep
function and clock:

	svc := simulator.NewService(cfg, profile, logger,
	    simulator.WithRandomSource(fixedRand{0.9}),
	    simulator.WithSleep(func(time.Duration) {}),
	    simulator.WithClock(func() time.Time { return frozen }),
	)

Known limitations, kept deliberately because the service owns no state:
RespondToPaymentRequest fabricates the requester details rather than looking
the request up, and CheckBalance always reports the same figure.
*/
package simulator
