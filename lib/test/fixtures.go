package test

import "github.com/mr-shifu/sss-lib/core/share"

// SmallSecret is the secret encoded by SmallDocument.
const SmallSecret = "3"

// SmallDocument holds four shares of a degree-2 polynomial, k = 3.
func SmallDocument() share.Document {
	return share.Document{
		Threshold: share.Threshold{N: 4, K: 3},
		Shares: []share.EncodedShare{
			{Key: "1", Base: 10, Digits: "4"},
			{Key: "2", Base: 2, Digits: "111"},
			{Key: "3", Base: 10, Digits: "12"},
			{Key: "6", Base: 4, Digits: "213"},
		},
	}
}

// MixedSecret is f(0) for the first seven shares of MixedDocument.
const MixedSecret = "79836264049851"

// MixedDocument holds ten shares in mixed bases, k = 7. Not every 7-subset
// lies on one polynomial.
func MixedDocument() share.Document {
	return share.Document{
		Threshold: share.Threshold{N: 10, K: 7},
		Shares: []share.EncodedShare{
			{Key: "1", Base: 6, Digits: "13444211440455345511"},
			{Key: "2", Base: 15, Digits: "aed7015a346d63"},
			{Key: "3", Base: 15, Digits: "6aeeb69631c227c"},
			{Key: "4", Base: 16, Digits: "e1b5e05623d881f"},
			{Key: "5", Base: 8, Digits: "316034514573652620673"},
			{Key: "6", Base: 3, Digits: "2122212201122002221120200210011020220200"},
			{Key: "7", Base: 3, Digits: "20120221122211000100210021102001201112121"},
			{Key: "8", Base: 6, Digits: "20220554335330240002224253"},
			{Key: "9", Base: 12, Digits: "45153788322a1255483"},
			{Key: "10", Base: 7, Digits: "1101613130313526312514143"},
		},
	}
}
