package sort

// networks holds the smallest known sorting networks for 2 to 32
// inputs, as flattened pairs of indices to compare and exchange.
// Source: https://bertdobbelaere.github.io/sorting_networks.html
var networks = [maxNetworkSize + 1][]uint8{
	2: {
		0, 1,
	},
	3: {
		0, 2, 0, 1, 1, 2,
	},
	4: {
		0, 2, 1, 3, 0, 1, 2, 3, 1, 2,
	},
	5: {
		0, 3, 1, 4, 0, 2, 1, 3, 0, 1, 2, 4, 1, 2, 3, 4,
		2, 3,
	},
	6: {
		0, 5, 1, 3, 2, 4, 1, 2, 3, 4, 0, 3, 2, 5, 0, 1,
		2, 3, 4, 5, 1, 2, 3, 4,
	},
	7: {
		0, 6, 2, 3, 4, 5, 0, 2, 1, 4, 3, 6, 0, 1, 2, 5,
		3, 4, 1, 2, 4, 6, 2, 3, 4, 5, 1, 2, 3, 4, 5, 6,
	},
	8: {
		0, 2, 1, 3, 4, 6, 5, 7, 0, 4, 1, 5, 2, 6, 3, 7,
		0, 1, 2, 3, 4, 5, 6, 7, 2, 4, 3, 5, 1, 4, 3, 6,
		1, 2, 3, 4, 5, 6,
	},
	9: {
		0, 3, 1, 7, 2, 5, 4, 8, 0, 7, 2, 4, 3, 8, 5, 6,
		0, 2, 1, 3, 4, 5, 7, 8, 1, 4, 3, 6, 5, 7, 0, 1,
		2, 4, 3, 5, 6, 8, 2, 3, 4, 5, 6, 7, 1, 2, 3, 4,
		5, 6,
	},
	10: {
		0, 8, 1, 9, 2, 7, 3, 5, 4, 6, 0, 2, 1, 4, 5, 8,
		7, 9, 0, 3, 2, 4, 5, 7, 6, 9, 0, 1, 3, 6, 8, 9,
		1, 5, 2, 3, 4, 8, 6, 7, 1, 2, 3, 5, 4, 6, 7, 8,
		2, 3, 4, 5, 6, 7, 3, 4, 5, 6,
	},
	11: {
		0, 9, 1, 6, 2, 4, 3, 7, 5, 8, 0, 1, 3, 5, 4, 10,
		6, 9, 7, 8, 1, 3, 2, 5, 4, 7, 8, 10, 0, 4, 1, 2,
		3, 7, 5, 9, 6, 8, 0, 1, 2, 6, 4, 5, 7, 8, 9, 10,
		2, 4, 3, 6, 5, 7, 8, 9, 1, 2, 3, 4, 5, 6, 7, 8,
		2, 3, 4, 5, 6, 7,
	},
	12: {
		0, 8, 1, 7, 2, 6, 3, 11, 4, 10, 5, 9, 0, 2, 1, 4,
		3, 5, 6, 8, 7, 10, 9, 11, 0, 1, 2, 9, 4, 7, 5, 6,
		10, 11, 1, 3, 2, 7, 4, 9, 8, 10, 0, 1, 2, 3, 4, 5,
		6, 7, 8, 9, 10, 11, 1, 2, 3, 5, 6, 8, 9, 10, 2, 4,
		3, 6, 5, 8, 7, 9, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	},
	13: {
		0, 11, 1, 7, 2, 4, 3, 5, 8, 9, 10, 12, 0, 2, 3, 6,
		4, 12, 5, 7, 8, 10, 0, 8, 1, 3, 2, 5, 4, 9, 6, 11,
		7, 12, 0, 1, 2, 10, 3, 8, 4, 6, 9, 11, 1, 3, 2, 4,
		5, 10, 6, 8, 7, 9, 11, 12, 1, 2, 3, 4, 5, 8, 6, 9,
		7, 10, 2, 3, 4, 7, 5, 6, 8, 11, 9, 10, 4, 5, 6, 7,
		8, 9, 10, 11, 3, 4, 5, 6, 7, 8, 9, 10,
	},
	14: {
		0, 3, 1, 9, 2, 6, 4, 12, 5, 10, 7, 11, 8, 13, 0, 2,
		3, 12, 4, 5, 6, 10, 7, 8, 11, 13, 0, 1, 2, 11, 3, 6,
		4, 7, 5, 9, 10, 12, 0, 4, 1, 7, 2, 5, 3, 8, 6, 13,
		9, 11, 1, 2, 3, 4, 5, 7, 6, 9, 8, 10, 12, 13, 1, 3,
		2, 4, 5, 9, 6, 10, 7, 8, 11, 12, 2, 3, 4, 5, 6, 7,
		8, 11, 9, 10, 12, 13, 4, 6, 5, 7, 8, 9, 10, 11, 3, 4,
		5, 6, 7, 8, 9, 10, 11, 12,
	},
	15: {
		0, 6, 1, 10, 2, 14, 3, 9, 4, 12, 5, 13, 7, 11, 0, 7,
		2, 5, 3, 4, 6, 11, 8, 10, 9, 12, 13, 14, 1, 13, 2, 3,
		4, 6, 5, 9, 7, 8, 10, 14, 11, 12, 0, 3, 1, 4, 5, 7,
		6, 13, 8, 9, 10, 11, 12, 14, 0, 2, 1, 5, 3, 8, 4, 6,
		7, 10, 9, 11, 12, 13, 0, 1, 2, 5, 3, 10, 4, 8, 6, 7,
		9, 12, 11, 13, 1, 2, 3, 4, 5, 6, 7, 9, 8, 10, 11, 12,
		3, 5, 4, 6, 7, 8, 9, 10, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11,
	},
	16: {
		0, 5, 1, 4, 2, 12, 3, 13, 6, 7, 8, 9, 10, 15, 11, 14,
		0, 2, 1, 10, 3, 6, 4, 7, 5, 14, 8, 11, 9, 12, 13, 15,
		0, 8, 1, 3, 2, 11, 4, 13, 5, 9, 6, 10, 7, 15, 12, 14,
		0, 1, 2, 4, 3, 8, 5, 6, 7, 12, 9, 10, 11, 13, 14, 15,
		1, 3, 2, 5, 4, 8, 6, 9, 7, 11, 10, 13, 12, 14, 1, 2,
		3, 5, 4, 11, 6, 8, 7, 9, 10, 12, 13, 14, 2, 3, 4, 5,
		6, 7, 8, 9, 10, 11, 12, 13, 4, 6, 5, 7, 8, 10, 9, 11,
		3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	},
	17: {
		0, 11, 1, 15, 2, 10, 3, 5, 4, 6, 8, 12, 9, 16, 13, 14,
		0, 6, 1, 13, 2, 8, 4, 14, 5, 15, 7, 11, 0, 8, 3, 7,
		4, 9, 6, 16, 10, 11, 12, 14, 0, 2, 1, 4, 5, 6, 7, 13,
		8, 9, 10, 12, 11, 14, 15, 16, 0, 3, 2, 5, 6, 11, 7, 10,
		9, 13, 12, 15, 14, 16, 0, 1, 3, 4, 5, 10, 6, 9, 7, 8,
		11, 15, 13, 14, 1, 2, 3, 7, 4, 8, 6, 12, 11, 13, 14, 15,
		1, 3, 2, 7, 4, 5, 9, 11, 10, 12, 13, 14, 2, 3, 4, 6,
		5, 7, 8, 10, 3, 4, 6, 8, 7, 9, 10, 12, 5, 6, 7, 8,
		9, 10, 11, 12, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	},
	18: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 1, 5, 2, 6, 3, 7, 4, 10, 8, 16, 9, 17, 12, 14,
		13, 15, 0, 8, 1, 10, 2, 12, 3, 14, 6, 13, 7, 15, 9, 16,
		11, 17, 0, 4, 1, 9, 5, 17, 8, 11, 10, 16, 0, 2, 1, 6,
		4, 10, 5, 9, 14, 16, 15, 17, 1, 2, 3, 10, 4, 12, 5, 7,
		6, 14, 9, 13, 15, 16, 3, 8, 5, 12, 7, 11, 9, 10, 3, 4,
		6, 8, 7, 14, 9, 12, 11, 13, 1, 3, 2, 4, 7, 9, 8, 12,
		11, 15, 13, 16, 2, 3, 4, 5, 6, 7, 10, 11, 12, 14, 13, 15,
		4, 6, 5, 8, 9, 10, 11, 14, 3, 4, 5, 7, 8, 9, 10, 12,
		13, 14, 5, 6, 7, 8, 9, 10, 11, 12,
	},
	19: {
		0, 12, 1, 4, 2, 8, 3, 5, 6, 17, 7, 11, 9, 14, 10, 13,
		15, 16, 0, 2, 1, 7, 3, 6, 4, 11, 5, 17, 8, 12, 10, 15,
		13, 16, 14, 18, 3, 10, 4, 14, 5, 15, 6, 13, 7, 9, 11, 17,
		16, 18, 0, 7, 1, 10, 4, 6, 9, 15, 11, 16, 12, 17, 13, 14,
		0, 3, 2, 6, 5, 7, 8, 11, 12, 16, 1, 8, 2, 9, 3, 4,
		6, 15, 7, 13, 10, 11, 12, 18, 1, 3, 2, 5, 6, 9, 7, 12,
		8, 10, 11, 14, 17, 18, 0, 1, 2, 3, 4, 8, 6, 10, 9, 12,
		14, 15, 16, 17, 1, 2, 5, 8, 6, 7, 9, 11, 10, 13, 14, 16,
		15, 17, 3, 6, 4, 5, 7, 9, 8, 10, 11, 12, 13, 14, 15, 16,
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 12, 14, 2, 3, 4, 5,
		6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	},
	20: {
		0, 3, 1, 7, 2, 5, 4, 8, 6, 9, 10, 13, 11, 15, 12, 18,
		14, 17, 16, 19, 0, 14, 1, 11, 2, 16, 3, 17, 4, 12, 5, 19,
		6, 10, 7, 15, 8, 18, 9, 13, 0, 4, 1, 2, 3, 8, 5, 7,
		11, 16, 12, 14, 15, 19, 17, 18, 1, 6, 2, 12, 3, 5, 4, 11,
		7, 17, 8, 15, 13, 18, 14, 16, 0, 1, 2, 6, 7, 10, 9, 12,
		13, 17, 18, 19, 1, 6, 5, 9, 7, 11, 8, 12, 10, 14, 13, 18,
		3, 5, 4, 7, 8, 10, 9, 11, 12, 15, 14, 16, 1, 3, 2, 4,
		5, 7, 6, 10, 9, 13, 12, 14, 15, 17, 16, 18, 1, 2, 3, 4,
		6, 7, 8, 9, 10, 11, 12, 13, 15, 16, 17, 18, 2, 3, 4, 6,
		5, 8, 7, 9, 10, 12, 11, 14, 13, 15, 16, 17, 4, 5, 6, 8,
		7, 10, 9, 12, 11, 13, 14, 15, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16,
	},
	21: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 0, 2, 1, 3, 4, 6, 5, 7, 8, 10, 9, 11,
		12, 14, 13, 15, 16, 18, 17, 19, 0, 4, 1, 5, 2, 6, 3, 7,
		8, 12, 9, 13, 10, 14, 11, 15, 0, 8, 1, 9, 2, 10, 3, 11,
		4, 12, 5, 13, 6, 14, 7, 15, 3, 18, 7, 20, 2, 7, 3, 6,
		14, 18, 19, 20, 2, 16, 3, 8, 6, 14, 7, 17, 11, 19, 15, 20,
		0, 2, 7, 10, 9, 16, 13, 17, 15, 19, 1, 7, 2, 3, 4, 9,
		5, 10, 11, 16, 12, 13, 17, 18, 1, 4, 5, 11, 6, 12, 7, 8,
		10, 13, 14, 16, 15, 17, 18, 19, 1, 2, 3, 4, 5, 6, 10, 14,
		11, 12, 13, 16, 17, 18, 2, 3, 4, 5, 6, 9, 10, 11, 12, 13,
		14, 15, 16, 17, 6, 7, 8, 9, 13, 15, 4, 6, 7, 8, 9, 12,
		15, 16, 3, 4, 5, 7, 8, 10, 9, 11, 12, 14, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14,
	},
	22: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 0, 2, 1, 3, 4, 6, 5, 7, 8, 10,
		9, 11, 12, 14, 13, 15, 16, 18, 17, 19, 0, 4, 1, 5, 2, 6,
		3, 7, 8, 12, 9, 13, 10, 14, 11, 15, 17, 18, 0, 8, 1, 9,
		2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15, 17, 21, 1, 8,
		6, 20, 7, 17, 19, 21, 3, 19, 4, 7, 6, 16, 14, 21, 18, 20,
		0, 6, 1, 4, 3, 12, 5, 18, 7, 10, 9, 16, 11, 20, 13, 19,
		14, 17, 15, 21, 2, 5, 3, 7, 6, 8, 10, 11, 12, 13, 15, 20,
		16, 18, 17, 19, 5, 8, 7, 9, 10, 12, 14, 16, 15, 17, 19, 20,
		2, 7, 3, 5, 8, 9, 10, 14, 11, 16, 12, 18, 17, 19, 2, 6,
		4, 7, 5, 8, 11, 13, 12, 14, 15, 18, 1, 2, 4, 6, 7, 10,
		9, 11, 13, 16, 2, 4, 3, 6, 5, 7, 8, 10, 9, 12, 11, 14,
		13, 15, 16, 18, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
		15, 16, 17, 18,
	},
	23: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 0, 2, 1, 3, 4, 6, 5, 7, 8, 10,
		9, 11, 12, 14, 13, 15, 16, 18, 17, 19, 21, 22, 0, 4, 1, 5,
		2, 6, 3, 7, 8, 12, 9, 13, 10, 14, 11, 15, 17, 21, 18, 20,
		19, 22, 0, 8, 1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14,
		7, 15, 1, 2, 5, 18, 7, 19, 9, 16, 10, 21, 12, 20, 15, 22,
		5, 9, 6, 7, 10, 18, 11, 21, 12, 17, 13, 20, 14, 15, 3, 17,
		6, 16, 7, 14, 8, 12, 15, 19, 20, 21, 3, 4, 5, 8, 6, 10,
		9, 12, 13, 16, 14, 15, 17, 18, 19, 21, 0, 5, 1, 8, 2, 12,
		3, 9, 4, 10, 7, 13, 11, 17, 14, 16, 18, 20, 2, 6, 3, 5,
		4, 8, 7, 11, 10, 12, 13, 18, 14, 17, 15, 20, 1, 3, 2, 5,
		6, 9, 7, 10, 11, 13, 12, 14, 15, 18, 16, 17, 19, 20, 2, 3,
		4, 6, 8, 9, 11, 12, 13, 14, 15, 16, 17, 19, 3, 4, 5, 6,
		7, 8, 9, 10, 12, 13, 14, 15, 17, 18, 4, 5, 6, 7, 8, 9,
		10, 11, 16, 17,
	},
	24: {
		0, 20, 1, 12, 2, 16, 3, 23, 4, 6, 5, 10, 7, 21, 8, 14,
		9, 15, 11, 22, 13, 18, 17, 19, 0, 3, 1, 11, 2, 7, 4, 17,
		5, 13, 6, 19, 8, 9, 10, 18, 12, 22, 14, 15, 16, 21, 20, 23,
		0, 1, 2, 4, 3, 12, 5, 8, 6, 9, 7, 10, 11, 20, 13, 16,
		14, 17, 15, 18, 19, 21, 22, 23, 2, 5, 4, 8, 6, 11, 7, 14,
		9, 16, 12, 17, 15, 19, 18, 21, 1, 8, 3, 14, 4, 7, 9, 20,
		10, 12, 11, 13, 15, 22, 16, 19, 0, 7, 1, 5, 3, 4, 6, 11,
		8, 15, 9, 14, 10, 13, 12, 17, 16, 23, 18, 22, 19, 20, 0, 2,
		1, 6, 4, 7, 5, 9, 8, 10, 13, 15, 14, 18, 16, 19, 17, 22,
		21, 23, 2, 3, 4, 5, 6, 8, 7, 9, 10, 11, 12, 13, 14, 16,
		15, 17, 18, 19, 20, 21, 1, 2, 3, 6, 4, 10, 7, 8, 9, 11,
		12, 14, 13, 19, 15, 16, 17, 20, 21, 22, 2, 3, 5, 10, 6, 7,
		8, 9, 13, 18, 14, 15, 16, 17, 20, 21, 3, 4, 5, 7, 10, 12,
		11, 13, 16, 18, 19, 20, 4, 6, 8, 10, 9, 12, 11, 14, 13, 15,
		17, 19, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
	},
	25: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 0, 2, 1, 3, 4, 6, 5, 7,
		8, 10, 9, 11, 12, 14, 13, 15, 16, 18, 17, 19, 20, 22, 21, 23,
		0, 4, 1, 5, 2, 6, 3, 7, 8, 12, 9, 13, 10, 14, 11, 15,
		16, 20, 17, 21, 18, 22, 19, 23, 0, 8, 1, 9, 2, 10, 3, 11,
		4, 12, 5, 13, 6, 14, 7, 15, 16, 24, 17, 18, 21, 22, 0, 16,
		2, 8, 3, 12, 4, 20, 5, 19, 9, 22, 10, 24, 1, 8, 6, 9,
		7, 22, 10, 18, 14, 19, 21, 24, 1, 17, 2, 10, 5, 21, 11, 24,
		18, 20, 1, 4, 2, 16, 3, 21, 6, 10, 8, 18, 9, 17, 11, 14,
		12, 20, 23, 24, 1, 2, 3, 5, 4, 16, 12, 18, 13, 23, 14, 19,
		15, 24, 17, 21, 4, 8, 7, 13, 9, 16, 10, 12, 11, 18, 14, 20,
		15, 23, 19, 22, 2, 4, 3, 8, 5, 16, 6, 9, 7, 17, 13, 21,
		15, 19, 22, 23, 3, 6, 5, 10, 7, 11, 8, 9, 12, 16, 13, 18,
		14, 17, 19, 22, 20, 21, 3, 4, 6, 8, 7, 9, 10, 12, 11, 14,
		13, 16, 15, 17, 18, 20, 19, 21, 5, 8, 7, 10, 9, 12, 11, 13,
		14, 16, 15, 18, 17, 20, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
		15, 16, 17, 18, 19, 20,
	},
	26: {
		0, 25, 1, 3, 2, 9, 4, 19, 5, 18, 6, 21, 7, 20, 8, 10,
		11, 12, 13, 14, 15, 17, 16, 23, 22, 24, 1, 4, 2, 16, 3, 19,
		5, 13, 6, 22, 7, 11, 8, 15, 9, 23, 10, 17, 12, 20, 14, 18,
		21, 24, 1, 5, 2, 8, 3, 14, 4, 13, 6, 7, 9, 15, 10, 16,
		11, 22, 12, 21, 17, 23, 18, 19, 20, 24, 0, 10, 1, 6, 3, 7,
		4, 11, 5, 12, 13, 20, 14, 21, 15, 25, 18, 22, 19, 24, 0, 4,
		8, 10, 12, 13, 15, 17, 21, 25, 0, 2, 4, 8, 10, 12, 13, 15,
		17, 21, 23, 25, 0, 1, 2, 3, 4, 5, 8, 14, 9, 13, 11, 17,
		12, 16, 20, 21, 22, 23, 24, 25, 1, 4, 3, 10, 6, 9, 7, 13,
		8, 11, 12, 18, 14, 17, 15, 22, 16, 19, 21, 24, 2, 6, 3, 8,
		5, 7, 9, 12, 13, 16, 17, 22, 18, 20, 19, 23, 1, 2, 4, 6,
		5, 9, 7, 10, 11, 12, 13, 14, 15, 18, 16, 20, 19, 21, 23, 24,
		2, 4, 3, 5, 7, 13, 8, 9, 10, 14, 11, 15, 12, 18, 16, 17,
		20, 22, 21, 23, 3, 4, 6, 9, 7, 11, 10, 12, 13, 15, 14, 18,
		16, 19, 21, 22, 5, 7, 6, 8, 9, 13, 10, 11, 12, 16, 14, 15,
		17, 19, 18, 20, 5, 6, 7, 8, 9, 10, 11, 13, 12, 14, 15, 16,
		17, 18, 19, 20, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21,
	},
	27: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 0, 2, 1, 3, 4, 6,
		5, 7, 8, 10, 9, 11, 12, 14, 13, 15, 16, 18, 17, 19, 20, 22,
		21, 23, 24, 26, 0, 4, 1, 5, 2, 6, 3, 7, 8, 12, 9, 13,
		10, 14, 11, 15, 16, 20, 17, 21, 18, 22, 19, 23, 25, 26, 0, 8,
		1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15, 18, 24,
		20, 26, 22, 25, 2, 8, 3, 12, 5, 10, 6, 9, 7, 13, 11, 14,
		16, 18, 17, 22, 19, 26, 21, 25, 0, 16, 1, 8, 5, 22, 10, 24,
		11, 25, 23, 26, 1, 18, 4, 8, 5, 19, 9, 26, 10, 20, 12, 23,
		21, 24, 2, 10, 3, 21, 4, 17, 6, 20, 7, 24, 8, 19, 12, 18,
		14, 23, 15, 26, 2, 4, 6, 10, 7, 11, 8, 16, 9, 17, 13, 19,
		14, 22, 15, 23, 20, 21, 1, 8, 3, 10, 5, 9, 12, 16, 13, 18,
		14, 17, 15, 24, 19, 25, 1, 2, 3, 12, 4, 8, 7, 13, 9, 16,
		11, 18, 14, 20, 17, 21, 19, 22, 23, 25, 2, 4, 3, 8, 5, 12,
		6, 9, 7, 14, 10, 16, 11, 17, 13, 20, 15, 19, 18, 21, 23, 24,
		5, 6, 7, 10, 9, 12, 11, 13, 14, 16, 15, 18, 17, 20, 21, 22,
		3, 5, 6, 8, 7, 9, 10, 12, 11, 14, 13, 16, 15, 17, 18, 20,
		19, 21, 22, 23, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
		15, 16, 17, 18, 19, 20, 21, 22,
	},
	28: {
		0, 9, 1, 20, 2, 21, 3, 22, 4, 19, 5, 24, 6, 25, 7, 26,
		8, 23, 10, 15, 11, 13, 12, 17, 14, 16, 18, 27, 0, 18, 1, 7,
		2, 6, 3, 5, 4, 8, 9, 27, 10, 12, 11, 14, 13, 16, 15, 17,
		19, 23, 20, 26, 21, 25, 22, 24, 1, 2, 3, 4, 5, 19, 6, 20,
		7, 21, 8, 22, 9, 18, 10, 11, 12, 14, 13, 15, 16, 17, 23, 24,
		25, 26, 0, 3, 1, 10, 5, 8, 6, 7, 11, 13, 14, 16, 17, 26,
		19, 22, 20, 21, 24, 27, 0, 1, 2, 7, 3, 10, 4, 8, 12, 13,
		14, 15, 17, 24, 19, 23, 20, 25, 26, 27, 1, 3, 2, 6, 4, 5,
		7, 19, 8, 20, 11, 12, 13, 14, 15, 16, 21, 25, 22, 23, 24, 26,
		2, 4, 5, 12, 7, 8, 9, 11, 10, 14, 13, 17, 15, 22, 16, 18,
		19, 20, 23, 25, 2, 9, 4, 11, 5, 6, 7, 13, 8, 10, 14, 20,
		16, 23, 17, 19, 18, 25, 21, 22, 1, 2, 3, 16, 4, 9, 6, 12,
		10, 14, 11, 24, 13, 17, 15, 21, 18, 23, 25, 26, 2, 8, 3, 5,
		4, 7, 6, 16, 9, 15, 11, 21, 12, 18, 19, 25, 20, 23, 22, 24,
		2, 3, 5, 8, 7, 9, 11, 15, 12, 16, 18, 20, 19, 22, 24, 25,
		6, 8, 10, 12, 11, 13, 14, 16, 15, 17, 19, 21, 5, 6, 8, 10,
		9, 11, 12, 13, 14, 15, 16, 18, 17, 19, 21, 22, 4, 5, 6, 7,
		8, 9, 10, 11, 12, 14, 13, 15, 16, 17, 18, 19, 20, 21, 22, 23,
		3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
		19, 20, 21, 22, 23, 24,
	},
	29: {
		0, 12, 1, 10, 2, 9, 3, 7, 5, 11, 6, 8, 13, 26, 14, 25,
		15, 28, 16, 27, 17, 21, 18, 19, 20, 24, 22, 23, 1, 6, 2, 3,
		4, 11, 7, 9, 8, 10, 13, 18, 14, 20, 15, 22, 16, 17, 19, 26,
		21, 27, 23, 28, 24, 25, 0, 4, 1, 2, 3, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 21, 20, 22, 23, 24, 25, 26,
		27, 28, 4, 6, 5, 9, 8, 11, 10, 12, 13, 15, 14, 16, 17, 23,
		18, 24, 19, 20, 21, 22, 25, 27, 26, 28, 0, 5, 3, 8, 4, 7,
		6, 11, 9, 10, 14, 15, 16, 25, 17, 19, 18, 20, 21, 23, 22, 24,
		26, 27, 0, 1, 2, 5, 6, 9, 7, 8, 10, 11, 14, 17, 15, 19,
		18, 21, 20, 23, 22, 26, 24, 27, 0, 13, 1, 3, 2, 4, 5, 6,
		9, 10, 15, 17, 16, 19, 22, 25, 24, 26, 1, 2, 3, 4, 5, 7,
		6, 8, 16, 18, 19, 21, 20, 22, 23, 25, 1, 14, 2, 3, 4, 5,
		6, 7, 8, 9, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 2, 15,
		3, 4, 5, 6, 10, 23, 11, 24, 12, 25, 19, 20, 21, 22, 3, 16,
		4, 17, 5, 18, 6, 19, 7, 20, 8, 21, 9, 22, 10, 15, 6, 10,
		8, 13, 9, 14, 11, 16, 12, 17, 18, 26, 19, 27, 20, 28, 4, 8,
		5, 9, 7, 11, 12, 13, 14, 18, 15, 19, 16, 20, 17, 21, 22, 26,
		23, 27, 24, 28, 2, 4, 3, 5, 6, 8, 7, 9, 10, 12, 11, 14,
		13, 15, 16, 18, 17, 19, 20, 22, 21, 23, 24, 26, 25, 27, 1, 2,
		3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
		19, 20, 21, 22, 23, 24, 25, 26, 27, 28,
	},
	30: {
		1, 2, 3, 10, 4, 14, 5, 8, 6, 13, 7, 12, 9, 11, 16, 17,
		18, 25, 19, 29, 20, 23, 21, 28, 22, 27, 24, 26, 0, 14, 1, 5,
		2, 8, 3, 7, 6, 9, 10, 12, 11, 13, 15, 29, 16, 20, 17, 23,
		18, 22, 21, 24, 25, 27, 26, 28, 0, 7, 1, 6, 2, 9, 4, 10,
		5, 11, 8, 13, 12, 14, 15, 22, 16, 21, 17, 24, 19, 25, 20, 26,
		23, 28, 27, 29, 0, 6, 2, 4, 3, 5, 7, 11, 8, 10, 9, 12,
		13, 14, 15, 21, 17, 19, 18, 20, 22, 26, 23, 25, 24, 27, 28, 29,
		0, 3, 1, 2, 4, 7, 5, 9, 6, 8, 10, 11, 12, 13, 14, 29,
		15, 18, 16, 17, 19, 22, 20, 24, 21, 23, 25, 26, 27, 28, 0, 1,
		2, 3, 4, 6, 7, 9, 10, 12, 11, 13, 15, 16, 17, 18, 19, 21,
		22, 24, 25, 27, 26, 28, 0, 15, 1, 2, 3, 5, 8, 10, 11, 12,
		13, 28, 16, 17, 18, 20, 23, 25, 26, 27, 1, 16, 3, 4, 5, 6,
		7, 8, 9, 10, 12, 27, 18, 19, 20, 21, 22, 23, 24, 25, 2, 3,
		4, 5, 6, 7, 8, 9, 10, 11, 17, 18, 19, 20, 21, 22, 23, 24,
		25, 26, 2, 17, 3, 18, 4, 19, 5, 6, 7, 8, 9, 24, 10, 25,
		11, 26, 20, 21, 22, 23, 5, 20, 6, 21, 7, 22, 8, 23, 9, 16,
		10, 17, 11, 18, 12, 19, 5, 9, 6, 10, 7, 11, 8, 15, 13, 20,
		14, 21, 18, 22, 19, 23, 3, 5, 4, 8, 7, 9, 12, 15, 13, 16,
		14, 17, 20, 24, 21, 25, 2, 4, 6, 8, 10, 12, 11, 13, 14, 15,
		16, 18, 17, 19, 20, 22, 21, 23, 24, 26, 25, 27, 1, 2, 3, 4,
		5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
		21, 22, 23, 24, 25, 26, 27, 28,
	},
	31: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 0, 2,
		1, 3, 4, 6, 5, 7, 8, 10, 9, 11, 12, 14, 13, 15, 16, 18,
		17, 19, 20, 22, 21, 23, 24, 26, 25, 27, 28, 30, 0, 4, 1, 5,
		2, 6, 3, 7, 8, 12, 9, 13, 10, 14, 11, 15, 16, 20, 17, 21,
		18, 22, 19, 23, 24, 28, 25, 29, 26, 30, 0, 8, 1, 9, 2, 10,
		3, 11, 4, 12, 5, 13, 6, 14, 7, 15, 16, 24, 17, 25, 18, 26,
		19, 27, 20, 28, 21, 29, 22, 30, 0, 16, 1, 8, 2, 4, 3, 12,
		5, 10, 6, 9, 7, 14, 11, 13, 17, 24, 18, 20, 19, 28, 21, 26,
		22, 25, 23, 30, 27, 29, 1, 2, 3, 5, 4, 8, 6, 22, 7, 11,
		9, 25, 10, 12, 13, 14, 17, 18, 19, 21, 20, 24, 23, 27, 26, 28,
		29, 30, 1, 17, 2, 18, 3, 19, 4, 20, 5, 10, 7, 23, 8, 24,
		11, 27, 12, 28, 13, 29, 14, 30, 21, 26, 3, 17, 4, 16, 5, 21,
		6, 18, 7, 9, 8, 20, 10, 26, 11, 23, 13, 25, 14, 28, 15, 27,
		22, 24, 1, 4, 3, 8, 5, 16, 7, 17, 9, 21, 10, 22, 11, 19,
		12, 20, 14, 24, 15, 26, 23, 28, 27, 30, 2, 5, 7, 8, 9, 18,
		11, 17, 12, 16, 13, 22, 14, 20, 15, 19, 23, 24, 26, 29, 2, 4,
		6, 12, 9, 16, 10, 11, 13, 17, 14, 18, 15, 22, 19, 25, 20, 21,
		27, 29, 5, 6, 8, 12, 9, 10, 11, 13, 14, 16, 15, 17, 18, 20,
		19, 23, 21, 22, 25, 26, 3, 5, 6, 7, 8, 9, 10, 12, 11, 14,
		13, 16, 15, 18, 17, 20, 19, 21, 22, 23, 24, 25, 26, 28, 3, 4,
		5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
		21, 22, 23, 24, 25, 26, 27, 28,
	},
	32: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
		0, 2, 1, 3, 4, 6, 5, 7, 8, 10, 9, 11, 12, 14, 13, 15,
		16, 18, 17, 19, 20, 22, 21, 23, 24, 26, 25, 27, 28, 30, 29, 31,
		0, 4, 1, 5, 2, 6, 3, 7, 8, 12, 9, 13, 10, 14, 11, 15,
		16, 20, 17, 21, 18, 22, 19, 23, 24, 28, 25, 29, 26, 30, 27, 31,
		0, 8, 1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15,
		16, 24, 17, 25, 18, 26, 19, 27, 20, 28, 21, 29, 22, 30, 23, 31,
		0, 16, 1, 8, 2, 4, 3, 12, 5, 10, 6, 9, 7, 14, 11, 13,
		15, 31, 17, 24, 18, 20, 19, 28, 21, 26, 22, 25, 23, 30, 27, 29,
		1, 2, 3, 5, 4, 8, 6, 22, 7, 11, 9, 25, 10, 12, 13, 14,
		17, 18, 19, 21, 20, 24, 23, 27, 26, 28, 29, 30, 1, 17, 2, 18,
		3, 19, 4, 20, 5, 10, 7, 23, 8, 24, 11, 27, 12, 28, 13, 29,
		14, 30, 21, 26, 3, 17, 4, 16, 5, 21, 6, 18, 7, 9, 8, 20,
		10, 26, 11, 23, 13, 25, 14, 28, 15, 27, 22, 24, 1, 4, 3, 8,
		5, 16, 7, 17, 9, 21, 10, 22, 11, 19, 12, 20, 14, 24, 15, 26,
		23, 28, 27, 30, 2, 5, 7, 8, 9, 18, 11, 17, 12, 16, 13, 22,
		14, 20, 15, 19, 23, 24, 26, 29, 2, 4, 6, 12, 9, 16, 10, 11,
		13, 17, 14, 18, 15, 22, 19, 25, 20, 21, 27, 29, 5, 6, 8, 12,
		9, 10, 11, 13, 14, 16, 15, 17, 18, 20, 19, 23, 21, 22, 25, 26,
		3, 5, 6, 7, 8, 9, 10, 12, 11, 14, 13, 16, 15, 18, 17, 20,
		19, 21, 22, 23, 24, 25, 26, 28, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26,
		27, 28,
	},
}
