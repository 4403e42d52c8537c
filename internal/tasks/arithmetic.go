package tasks

import "github.com/born-ml/numtasks/tensor"

// FahrenheitToCelsius converts temperatures elementwise: (f - 32) * 5/9.
func FahrenheitToCelsius[B tensor.Backend](f *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return f.AddScalar(-32).MulScalar(5.0 / 9)
}

// CelsiusToFahrenheit converts temperatures elementwise: c * 9/5 + 32.
func CelsiusToFahrenheit[B tensor.Backend](c *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return c.MulScalar(9.0 / 5).AddScalar(32)
}
