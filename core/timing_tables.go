package core

// Delay tables per supported clock. Rows marked "interpolated" were derived
// from their neighbours rather than measured on a scope.

var table8MHz = []delayRow{
	//  baud        rxcenter  rxintra  rxstop  tx
	{115200, Profile{1, 5, 5, 3}},
	{57600, Profile{1, 15, 15, 13}},
	{38400, Profile{2, 25, 26, 23}},
	{31250, Profile{7, 32, 33, 29}},
	{28800, Profile{11, 35, 35, 32}},
	{19200, Profile{20, 55, 55, 52}},
	{14400, Profile{30, 75, 75, 72}},
	{9600, Profile{50, 114, 114, 112}},
	{4800, Profile{110, 233, 233, 230}},
	{2400, Profile{229, 472, 472, 469}},
	{1200, Profile{467, 948, 948, 945}},
	{300, Profile{1895, 3805, 3805, 3802}},
}

var table16MHz = []delayRow{
	{115200, Profile{0, 14, 14, 12}},
	{57600, Profile{5, 34, 34, 32}},
	{38400, Profile{15, 54, 54, 52}},
	{31250, Profile{23, 67, 67, 65}}, // interpolated
	{28800, Profile{26, 74, 74, 72}}, // interpolated
	{19200, Profile{44, 113, 113, 112}},
	{14400, Profile{74, 156, 153, 153}}, // interpolated
	{9600, Profile{114, 234, 234, 233}},
	{4800, Profile{233, 474, 474, 471}},
	{2400, Profile{471, 940, 940, 945}},
	{1200, Profile{947, 1902, 1902, 1895}},
	{300, Profile{3804, 7617, 7617, 7614}},
}

var table16M5Hz = []delayRow{
	{115200, Profile{0, 15, 15, 13}},
	{57600, Profile{3, 35, 35, 33}},
	{38400, Profile{12, 56, 56, 54}},
	{31250, Profile{32, 72, 72, 70}}, // interpolated
	{28800, Profile{35, 79, 79, 76}}, // interpolated
	{19200, Profile{52, 118, 118, 116}},
	{14400, Profile{76, 161, 161, 158}}, // interpolated
	{9600, Profile{118, 241, 241, 238}},
	{4800, Profile{240, 487, 487, 485}},
	{2400, Profile{486, 976, 976, 974}},
	{1200, Profile{977, 1961, 1961, 1956}},
	{600, Profile{1961, 3923, 3923, 3919}},
	{300, Profile{3923, 7855, 7855, 7852}},
}

var table20MHz = []delayRow{
	{115200, Profile{3, 21, 21, 18}},
	{57600, Profile{20, 43, 43, 41}},
	{38400, Profile{37, 73, 73, 70}},
	{31250, Profile{45, 89, 89, 88}},
	{28800, Profile{46, 98, 98, 95}},
	{19200, Profile{71, 148, 148, 145}},
	{14400, Profile{96, 197, 197, 194}},
	{9600, Profile{146, 297, 297, 294}},
	{4800, Profile{296, 595, 595, 592}},
	{2400, Profile{592, 1189, 1189, 1186}},
	{1200, Profile{1187, 2379, 2379, 2376}},
	{300, Profile{4759, 9523, 9523, 9520}},
}
