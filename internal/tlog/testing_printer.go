package tlog

//go:generate mockgen -source testing_printer.go -destination ../extmocks/testing_printer.go -package extmocks -mock_names TestingPrinter=TestingPrinterMock

// TestingPrinter wrapper over *testing.T to print data
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Logf(format string, a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}
