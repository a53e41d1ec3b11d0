package main

type Options struct {
	shape  Shape
	params CuttingParameters

	rpm      float64
	imperial bool

	quiet bool
}
