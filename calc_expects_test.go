package main

// @generated from calc_test.go

//go:generate go run scripts/gen_calc_expects.go -- calc_test.go calc_expects_test.go

import "time"

func withCalcOptions(opts ...Option) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.withOptions(opts...)
	}
}

func withCalcStack(values ...int64) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.withStack(values...)
	}
}

func withCalcRadixes(radixes ...Radix) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.withRadixes(radixes...)
	}
}

func withCalcTimeout(timeout time.Duration) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.withTimeout(timeout)
	}
}

func expectCalcError(err error) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectError(err)
	}
}

func expectCalcStack(values ...int64) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectStack(values...)
	}
}

func expectCalcTokenError(index int, token string) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectTokenError(index, token)
	}
}

func expectCalcOutput(output string) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectOutput(output)
	}
}
