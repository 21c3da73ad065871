package linear

// Option configures a LinearRegression.
type Option func(*LinearRegression)

// WithFitIntercept controls whether a bias term is estimated.
// Defaults to true.
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}
