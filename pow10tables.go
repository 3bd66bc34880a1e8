// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

// 192-bit scaled powers of ten for the fixed-precision kernels, stored as
// {lo, mid, hi} word triples and indexed through the offset tables. Entries
// wider than 192 bits are reduced mod 10^9 * 2^152, which leaves every
// 9-digit block computed through mulShiftMod1e9 unchanged. The values are
// computed offline; see the Ryu printf paper for the construction.

const pow10AdditionalBits = 120

var pow10Offset = [62]uint16{
	0, 2, 5, 8, 12, 16, 21, 26, 32, 39,
	46, 54, 62, 71, 80, 90, 100, 111, 122, 134,
	146, 159, 173, 187, 202, 217, 233, 249, 266, 283,
	301, 319, 338, 357, 377, 397, 418, 440, 462, 485,
	508, 532, 556, 581, 606, 632, 658, 685, 712, 740,
	769, 798, 828, 858, 889, 920, 952, 984, 1017, 1050,
	1084, 1118,
}

var pow10Split = [1153][3]uint64{
	{0x0000000000000001, 0x0100000000000000, 0x0000000000000000},
	{0x09b5a52cb98b4055, 0x00000000044b82fa, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0000000000000100},
	{0xa52cb98b405447c5, 0x0000044b82fa09b5, 0x0000000000000000},
	{0x5dd1d243aba0e760, 0x0000000000001272, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0000000001000000},
	{0xb98b405447c4a982, 0x044b82fa09b5a52c, 0x0000000000000000},
	{0xd243aba0e75fe646, 0x0000000012725dd1, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0000010000000000},
	{0x405447c4a98187ef, 0x82fa09b5a52cb98b, 0x000000000000044b},
	{0xaba0e75fe645cc49, 0x000012725dd1d243, 0x0000000000000000},
	{0x68dbc8f03f243bb0, 0x0000000000004f3a, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x001194d800000000},
	{0x47c4a98187eebb23, 0x09b5a52cb98b4054, 0x00000000044b82fa},
	{0xe75fe645cc4873fa, 0x12725dd1d243aba0, 0x0000000000000000},
	{0xc8f03f243baf5133, 0x000000004f3a68db, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x003a376c00000000},
	{0xa98187eebb22f009, 0xa52cb98b405447c4, 0x0000044b82fa09b5},
	{0xe645cc4873f9e65b, 0x5dd1d243aba0e75f, 0x0000000000001272},
	{0x3f243baf513267ab, 0x00004f3a68dbc8f0, 0x0000000000000000},
	{0x4932d2e725a5bbcb, 0x0000000000015448, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002a4ae600000000},
	{0x87eebb22f008d5d7, 0xb98b405447c4a981, 0x001aa0c609b5a52c},
	{0xcc4873f9e65afe69, 0xd243aba0e75fe645, 0x0000000012725dd1},
	{0x3baf513267aa9a3f, 0x4f3a68dbc8f03f24, 0x0000000000000000},
	{0xd2e725a5bbca17a4, 0x0000000154484932, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x000a69ce00000000},
	{0xbb22f008d5d64f9d, 0x405447c4a98187ee, 0x0030da53a52cb98b},
	{0x73f9e65afe688c93, 0xaba0e75fe645cc48, 0x000012725dd1d243},
	{0x513267aa9a3ee525, 0x68dbc8f03f243baf, 0x0000000000004f3a},
	{0x25a5bbca17a3aba2, 0x000154484932d2e7, 0x0000000000000000},
	{0x6b4ddaae4689eb04, 0x000000000005b580, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00206c0600000000},
	{0xf008d5d64f9c394b, 0x47c4a98187eebb22, 0x000fc178b98b4054},
	{0xe65afe688c928e20, 0xe75fe645cc4873f9, 0x000d997bd243aba0},
	{0x67aa9a3ee524f8e1, 0xc8f03f243baf5132, 0x000000004f3a68db},
	{0xbbca17a3aba173d4, 0x54484932d2e725a5, 0x0000000000000001},
	{0xdaae4689eb03dcbf, 0x00000005b5806b4d, 0x0000000000000000},
	{0x851a0b548ea3c996, 0x0000000000000018, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00139f8000000000},
	{0xd5d64f9c394ae922, 0xa98187eebb22f008, 0x0025769d405447c4},
	{0xfe688c928e1f2196, 0xe645cc4873f9e65a, 0x00332c33aba0e75f},
	{0x9a3ee524f8e02891, 0x3f243baf513267aa, 0x00004f3a68dbc8f0},
	{0x17a3aba173d3d5fd, 0x4932d2e725a5bbca, 0x0000000000015448},
	{0x4689eb03dcbe2fe9, 0x0005b5806b4ddaae, 0x0000000000000000},
	{0x0b548ea3c99552fd, 0x000000000018851a, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002dc9fa00000000},
	{0x4f9c394ae9213016, 0x87eebb22f008d5d6, 0x0016540e47c4a981},
	{0x8c928e1f2195818b, 0xcc4873f9e65afe68, 0x0037efd0e75fe645},
	{0xe524f8e0289064e4, 0x3baf513267aa9a3e, 0x0010d493c8f03f24},
	{0xaba173d3d5fc130d, 0xd2e725a5bbca17a3, 0x0000000154484932},
	{0xeb03dcbe2fe86913, 0xb5806b4ddaae4689, 0x0000000000000005},
	{0x8ea3c99552fc2988, 0x00000018851a0b54, 0x0000000000000000},
	{0x4ff258c744320748, 0x0000000000000069, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x001e28a600000000},
	{0x394ae92130153561, 0xbb22f008d5d64f9c, 0x00104048a98187ee},
	{0x8e1f2195818ae780, 0x73f9e65afe688c92, 0x00086fa9e645cc48},
	{0xf8e0289064e3cffb, 0x513267aa9a3ee524, 0x000bd5563f243baf},
	{0x73d3d5fc130c23b8, 0x25a5bbca17a3aba1, 0x000154484932d2e7},
	{0xdcbe2fe869126827, 0x6b4ddaae4689eb03, 0x000000000005b580},
	{0xc99552fc298784d8, 0x0018851a0b548ea3, 0x0000000000000000},
	{0x58c7443207477640, 0x0000000000694ff2, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0037957a00000000},
	{0xe9213015356022f0, 0xf008d5d64f9c394a, 0x0010de8987eebb22},
	{0x2195818ae77f3c37, 0xe65afe688c928e1f, 0x0028d1b7cc4873f9},
	{0x289064e3cffa15ac, 0x67aa9a3ee524f8e0, 0x0035d1703baf5132},
	{0xd5fc130c23b7aa2e, 0xbbca17a3aba173d3, 0x001de660d2e725a5},
	{0x2fe8691268269aa8, 0xdaae4689eb03dcbe, 0x00000005b5806b4d},
	{0x52fc298784d710d3, 0x851a0b548ea3c995, 0x0000000000000018},
	{0x44320747763f868d, 0x000000694ff258c7, 0x0000000000000000},
	{0x5016d841baa4644c, 0x00000000000001c4, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0008227200000000},
	{0x3015356022ef3217, 0xd5d64f9c394ae921, 0x003a2f30bb22f008},
	{0x818ae77f3c36a08d, 0xfe688c928e1f2195, 0x000bbc5e73f9e65a},
	{0x64e3cffa15ab8bba, 0x9a3ee524f8e02890, 0x0026967d513267aa},
	{0x130c23b7aa2da19c, 0x17a3aba173d3d5fc, 0x0012207925a5bbca},
	{0x691268269aa7acc6, 0x4689eb03dcbe2fe8, 0x0005b5806b4ddaae},
	{0x298784d710d2d086, 0x0b548ea3c99552fc, 0x000000000018851a},
	{0x0747763f868cd01e, 0x00694ff258c74432, 0x0000000000000000},
	{0xd841baa4644b8db5, 0x0000000001c45016, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00020ea000000000},
	{0x356022ef3216417a, 0x4f9c394ae9213015, 0x00152fa6f008d5d6},
	{0xe77f3c36a08cce4f, 0x8c928e1f2195818a, 0x0027b8b3e65afe68},
	{0xcffa15ab8bb9ccc3, 0xe524f8e0289064e3, 0x002f0da467aa9a3e},
	{0x23b7aa2da19b9a3d, 0xaba173d3d5fc130c, 0x002893a1bbca17a3},
	{0x68269aa7acc51b40, 0xeb03dcbe2fe86912, 0x0006105bdaae4689},
	{0x84d710d2d085b92b, 0x8ea3c99552fc2987, 0x00000018851a0b54},
	{0x763f868cd01d569b, 0x4ff258c744320747, 0x0000000000000069},
	{0xbaa4644b8db4c788, 0x000001c45016d841, 0x0000000000000000},
	{0xab3c855a0e1517d8, 0x0000000000000796, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0031e5ee00000000},
	{0x22ef32164179b6c0, 0x394ae92130153560, 0x0018579cd5d64f9c},
	{0x3c36a08cce4e0a37, 0x8e1f2195818ae77f, 0x000ea4d6fe688c92},
	{0x15ab8bb9ccc2933c, 0xf8e0289064e3cffa, 0x00261b849a3ee524},
	{0xaa2da19b9a3cab82, 0x73d3d5fc130c23b7, 0x00201c8e17a3aba1},
	{0x9aa7acc51b3fd35c, 0xdcbe2fe869126826, 0x0013b0004689eb03},
	{0x10d2d085b92a647f, 0xc99552fc298784d7, 0x0018851a0b548ea3},
	{0x868cd01d569a53f5, 0x58c744320747763f, 0x0000000000694ff2},
	{0x644b8db4c7871bc4, 0x01c45016d841baa4, 0x0000000000000000},
	{0x855a0e1517d71395, 0x000000000796ab3c, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00245faa00000000},
	{0x32164179b6bf082d, 0xe9213015356022ef, 0x00221f5e4f9c394a},
	{0xa08cce4e0a366281, 0x2195818ae77f3c36, 0x00089bb68c928e1f},
	{0x8bb9ccc2933b76b5, 0x289064e3cffa15ab, 0x00259750e524f8e0},
	{0xa19b9a3cab811d57, 0xd5fc130c23b7aa2d, 0x0000e635aba173d3},
	{0xacc51b3fd35b883f, 0x2fe8691268269aa7, 0x0026227deb03dcbe},
	{0xd085b92a647eb512, 0x52fc298784d710d2, 0x00386cfe8ea3c995},
	{0xd01d569a53f4e888, 0x44320747763f868c, 0x000000694ff258c7},
	{0x8db4c7871bc3602d, 0x5016d841baa4644b, 0x00000000000001c4},
	{0x0e1517d71394ca12, 0x00000796ab3c855a, 0x0000000000000000},
	{0xb309321cde0be3b6, 0x0000000000002097, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0011710600000000},
	{0x4179b6bf082ce3fe, 0x3015356022ef3216, 0x00073f90394ae921},
	{0xce4e0a36628033a5, 0x818ae77f3c36a08c, 0x003430e28e1f2195},
	{0xccc2933b76b4fa42, 0x64e3cffa15ab8bb9, 0x00315266f8e02890},
	{0x9a3cab811d56fa9d, 0x130c23b7aa2da19b, 0x002c480973d3d5fc},
	{0x1b3fd35b883ed9c6, 0x691268269aa7acc5, 0x0022c469dcbe2fe8},
	{0xb92a647eb5110568, 0x298784d710d2d085, 0x002e6533c99552fc},
	{0x569a53f4e887a6ab, 0x0747763f868cd01d, 0x002db52858c74432},
	{0xc7871bc3602cbb46, 0xd841baa4644b8db4, 0x0000000001c45016},
	{0x17d71394ca11fdcf, 0x0796ab3c855a0e15, 0x0000000000000000},
	{0x321cde0be3b5001a, 0x000000002097b309, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0007ba2600000000},
	{0xb6bf082ce3fd84c0, 0x356022ef32164179, 0x0022cf40e9213015},
	{0x0a36628033a40be8, 0xe77f3c36a08cce4e, 0x00219e8f2195818a},
	{0x933b76b4fa414024, 0xcffa15ab8bb9ccc2, 0x003ab0ce289064e3},
	{0xab811d56fa9c85a6, 0x23b7aa2da19b9a3c, 0x00361cbdd5fc130c},
	{0xd35b883ed9c580d8, 0x68269aa7acc51b3f, 0x003ab60a2fe86912},
	{0x647eb51105677ca6, 0x84d710d2d085b92a, 0x000ba5ed52fc2987},
	{0x53f4e887a6aafea9, 0x763f868cd01d569a, 0x000551a744320747},
	{0x1bc3602cbb453d3a, 0xbaa4644b8db4c787, 0x000001c45016d841},
	{0x1394ca11fdce19b5, 0xab3c855a0e1517d7, 0x0000000000000796},
	{0xde0be3b50019a304, 0x00002097b309321c, 0x0000000000000000},
	{0xea76c619ef3657ec, 0x0000000000008bfb, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0004f02000000000},
	{0x082ce3fd84bf5bba, 0x22ef32164179b6bf, 0x0020575730153560},
	{0x628033a40be73648, 0x3c36a08cce4e0a36, 0x00350aad818ae77f},
	{0x76b4fa41402348ec, 0x15ab8bb9ccc2933b, 0x0002d39264e3cffa},
	{0x1d56fa9c85a535e0, 0xaa2da19b9a3cab81, 0x00044922130c23b7},
	{0x883ed9c580d75888, 0x9aa7acc51b3fd35b, 0x001f8d8e69126826},
	{0xb51105677ca5ca8f, 0x10d2d085b92a647e, 0x0010a376298784d7},
	{0xe887a6aafea8cb98, 0x868cd01d569a53f4, 0x000f4dc20747763f},
	{0x602cbb453d393824, 0x644b8db4c7871bc3, 0x00231490d841baa4},
	{0xca11fdce19b4aed7, 0x855a0e1517d71394, 0x000000000796ab3c},
	{0xe3b50019a3030a33, 0x2097b309321cde0b, 0x0000000000000000},
	{0xc619ef3657eb4edc, 0x000000008bfbea76, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0016622e00000000},
	{0xe3fd84bf5bb9d3e6, 0x32164179b6bf082c, 0x001d9fcf356022ef},
	{0x33a40be73647459e, 0xa08cce4e0a366280, 0x003a3a34e77f3c36},
	{0xfa41402348ebc591, 0x8bb9ccc2933b76b4, 0x002ac345cffa15ab},
	{0xfa9c85a535df608f, 0xa19b9a3cab811d56, 0x0008fcfc23b7aa2d},
	{0xd9c580d75887ffe6, 0xacc51b3fd35b883e, 0x003212ea68269aa7},
	{0x05677ca5ca8e7681, 0xd085b92a647eb511, 0x000eca6b84d710d2},
	{0xa6aafea8cb971a7d, 0xd01d569a53f4e887, 0x00264683763f868c},
	{0xbb453d39382309ec, 0x8db4c7871bc3602c, 0x000e1753baa4644b},
	{0xfdce19b4aed6bf45, 0x0e1517d71394ca11, 0x00000796ab3c855a},
	{0x0019a3030a3231c0, 0xb309321cde0be3b5, 0x0000000000002097},
	{0xef3657eb4edb3c56, 0x00008bfbea76c619, 0x0000000000000000},
	{0x163246e89954e9a9, 0x000000000002593a, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0037b12c00000000},
	{0x84bf5bb9d3e589a1, 0x4179b6bf082ce3fd, 0x000cb80822ef3216},
	{0x0be73647459d41ef, 0xce4e0a36628033a4, 0x0027f0ed3c36a08c},
	{0x402348ebc590999c, 0xccc2933b76b4fa41, 0x000a9fd615ab8bb9},
	{0x85a535df608eed90, 0x9a3cab811d56fa9c, 0x00270a33aa2da19b},
	{0x80d75887ffe5cab7, 0x1b3fd35b883ed9c5, 0x003115869aa7acc5},
	{0x7ca5ca8e7680a354, 0xb92a647eb5110567, 0x0020c91b10d2d085},
	{0xfea8cb971a7c381e, 0x569a53f4e887a6aa, 0x00119757868cd01d},
	{0x3d39382309eb172f, 0xc7871bc3602cbb45, 0x0014f7b2644b8db4},
	{0x19b4aed6bf442c49, 0x17d71394ca11fdce, 0x002351fc855a0e15},
	{0xa3030a3231bf90b0, 0x321cde0be3b50019, 0x000000002097b309},
	{0x57eb4edb3c55b65b, 0x8bfbea76c619ef36, 0x0000000000000000},
	{0x46e89954e9a81fe4, 0x00000002593a1632, 0x0000000000000000},
	{0x163ff802a3426a8d, 0x000000000000000a, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00052e8c00000000},
	{0x5bb9d3e589a0ece4, 0xb6bf082ce3fd84bf, 0x0020c8af32164179},
	{0x3647459d41eefc20, 0x0a36628033a40be7, 0x002b4288a08cce4e},
	{0x48ebc590999b3443, 0x933b76b4fa414023, 0x00243aa18bb9ccc2},
	{0x35df608eed8f8e22, 0xab811d56fa9c85a5, 0x002de475a19b9a3c},
	{0x5887ffe5cab6b936, 0xd35b883ed9c580d7, 0x001f2287acc51b3f},
	{0xca8e7680a3538142, 0x647eb51105677ca5, 0x0006d4b2d085b92a},
	{0xcb971a7c381d07a6, 0x53f4e887a6aafea8, 0x002a174ad01d569a},
	{0x382309eb172e3e61, 0x1bc3602cbb453d39, 0x0004e93f8db4c787},
	{0xaed6bf442c480fbe, 0x1394ca11fdce19b4, 0x0002241c0e1517d7},
	{0x0a3231bf90aff414, 0xde0be3b50019a303, 0x00002097b309321c},
	{0x4edb3c55b65a883e, 0xea76c619ef3657eb, 0x0000000000008bfb},
	{0x9954e9a81fe35444, 0x0002593a163246e8, 0x0000000000000000},
	{0xf802a3426a8ca07d, 0x00000000000a163f, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x001c56b600000000},
	{0xd3e589a0ece3dd4f, 0x082ce3fd84bf5bb9, 0x00122b8a4179b6bf},
	{0x459d41eefc1fa7ae, 0x628033a40be73647, 0x002d4d94ce4e0a36},
	{0xc590999b34429ee6, 0x76b4fa41402348eb, 0x000e2035ccc2933b},
	{0x608eed8f8e21f320, 0x1d56fa9c85a535df, 0x000edc4d9a3cab81},
	{0xffe5cab6b9358329, 0x883ed9c580d75887, 0x0009decb1b3fd35b},
	{0x7680a3538141b711, 0xb51105677ca5ca8e, 0x0023eea9b92a647e},
	{0x1a7c381d07a5741f, 0xe887a6aafea8cb97, 0x001f7517569a53f4},
	{0x09eb172e3e605ad2, 0x602cbb453d393823, 0x0032138ec7871bc3},
	{0xbf442c480fbddfa1, 0xca11fdce19b4aed6, 0x0006b8a117d71394},
	{0x31bf90aff4138edc, 0xe3b50019a3030a32, 0x003aa75b321cde0b},
	{0x3c55b65a883d7eab, 0xc619ef3657eb4edb, 0x000000008bfbea76},
	{0xe9a81fe35443e1c0, 0x593a163246e89954, 0x0000000000000002},
	{0xa3426a8ca07c2dcc, 0x0000000a163ff802, 0x0000000000000000},
	{0x52adc44bace4a762, 0x000000000000002b, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002c7a6400000000},
	{0x89a0ece3dd4e6909, 0xe3fd84bf5bb9d3e5, 0x000ca995b6bf082c},
	{0x41eefc1fa7ade5d7, 0x33a40be73647459d, 0x000dd8500a366280},
	{0x999b34429ee53c15, 0xfa41402348ebc590, 0x001e0fd4933b76b4},
	{0xed8f8e21f31f1482, 0xfa9c85a535df608e, 0x00154fbeab811d56},
	{0xcab6b9358328ea6b, 0xd9c580d75887ffe5, 0x001d8057d35b883e},
	{0xa3538141b7104103, 0x05677ca5ca8e7680, 0x003905ac647eb511},
	{0x381d07a5741ecc62, 0xa6aafea8cb971a7c, 0x002d7d4c53f4e887},
	{0x172e3e605ad1dc29, 0xbb453d39382309eb, 0x0022a4891bc3602c},
	{0x2c480fbddfa0185d, 0xfdce19b4aed6bf44, 0x0002c4ab1394ca11},
	{0x90aff4138edbf1b6, 0x0019a3030a3231bf, 0x001ba778de0be3b5},
	{0xb65a883d7eaa3b8d, 0xef3657eb4edb3c55, 0x00008bfbea76c619},
	{0x1fe35443e1bfa421, 0x163246e89954e9a8, 0x000000000002593a},
	{0x6a8ca07c2dcb0cf3, 0x000a163ff802a342, 0x0000000000000000},
	{0xc44bace4a761b05c, 0x00000000002b52ad, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x000a73b000000000},
	{0xece3dd4e69087102, 0x84bf5bb9d3e589a0, 0x001dd96b082ce3fd},
	{0xfc1fa7ade5d649f3, 0x0be73647459d41ee, 0x002a231a628033a4},
	{0x34429ee53c141ad0, 0x402348ebc590999b, 0x0014405976b4fa41},
	{0x8e21f31f148122db, 0x85a535df608eed8f, 0x000ea2311d56fa9c},
	{0xb9358328ea6af230, 0x80d75887ffe5cab6, 0x0003f689883ed9c5},
	{0x8141b710410283b1, 0x7ca5ca8e7680a353, 0x001f956eb5110567},
	{0x07a5741ecc617a2b, 0xfea8cb971a7c381d, 0x000a6a34e887a6aa},
	{0x3e605ad1dc28e0ce, 0x3d39382309eb172e, 0x0004305f602cbb45},
	{0x0fbddfa0185cbe13, 0x19b4aed6bf442c48, 0x002a2476ca11fdce},
	{0xf4138edbf1b5e3b9, 0xa3030a3231bf90af, 0x000609cfe3b50019},
	{0x883d7eaa3b8ca1ba, 0x57eb4edb3c55b65a, 0x000d863cc619ef36},
	{0x5443e1bfa420bc98, 0x46e89954e9a81fe3, 0x00000002593a1632},
	{0xa07c2dcb0cf26f7b, 0x163ff802a3426a8c, 0x000000000000000a},
	{0xace4a761b05b2635, 0x0000002b52adc44b, 0x0000000000000000},
	{0x121a4650e4ddeb93, 0x00000000000000ba, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x003b06e200000000},
	{0xdd4e690871018ebb, 0x5bb9d3e589a0ece3, 0x002631eee3fd84bf},
	{0xa7ade5d649f2497a, 0x3647459d41eefc1f, 0x000f313c33a40be7},
	{0x9ee53c141acfdbbb, 0x48ebc590999b3442, 0x00247170fa414023},
	{0xf31f148122da8f9e, 0x35df608eed8f8e21, 0x002dfc1cfa9c85a5},
	{0x8328ea6af22fbd8d, 0x5887ffe5cab6b935, 0x0018184cd9c580d7},
	{0xb710410283b0a5ee, 0xca8e7680a3538141, 0x0027d01505677ca5},
	{0x741ecc617a2aba2f, 0xcb971a7c381d07a5, 0x00101ef9a6aafea8},
	{0x5ad1dc28e0cd47a3, 0x382309eb172e3e60, 0x002ffc8abb453d39},
	{0xdfa0185cbe12d3fa, 0xaed6bf442c480fbd, 0x0005f811fdce19b4},
	{0x8edbf1b5e3b8c588, 0x0a3231bf90aff413, 0x000ca71f0019a303},
	{0x7eaa3b8ca1b93b53, 0x4edb3c55b65a883d, 0x000bb4bdef3657eb},
	{0xe1bfa420bc97a718, 0x9954e9a81fe35443, 0x0002593a163246e8},
	{0x2dcb0cf26f7ab7b8, 0xf802a3426a8ca07c, 0x00000000000a163f},
	{0xa761b05b2634b255, 0x002b52adc44bace4, 0x0000000000000000},
	{0x4650e4ddeb92f34e, 0x0000000000ba121a, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002c8dd800000000},
	{0x690871018eba3159, 0xd3e589a0ece3dd4e, 0x0035d54f84bf5bb9},
	{0xe5d649f24979c251, 0x459d41eefc1fa7ad, 0x000837240be73647},
	{0x3c141acfdbbafc05, 0xc590999b34429ee5, 0x0026774f402348eb},
	{0x148122da8f9d4d83, 0x608eed8f8e21f31f, 0x0032239c85a535df},
	{0xea6af22fbd8cc194, 0xffe5cab6b9358328, 0x002699ed80d75887},
	{0x410283b0a5ed881c, 0x7680a3538141b710, 0x00274cfb7ca5ca8e},
	{0xcc617a2aba2edb85, 0x1a7c381d07a5741e, 0x000d5288fea8cb97},
	{0xdc28e0cd47a24e22, 0x09eb172e3e605ad1, 0x002a118b3d393823},
	{0x185cbe12d3f98416, 0xbf442c480fbddfa0, 0x0000b53019b4aed6},
	{0xf1b5e3b8c5870899, 0x31bf90aff4138edb, 0x0036c973a3030a32},
	{0x3b8ca1b93b52a16f, 0x3c55b65a883d7eaa, 0x003627fa57eb4edb},
	{0xa420bc97a717a7b1, 0xe9a81fe35443e1bf, 0x000ee4d646e89954},
	{0x0cf26f7ab7b7ea44, 0xa3426a8ca07c2dcb, 0x0000000a163ff802},
	{0xb05b2634b254f189, 0x52adc44bace4a761, 0x000000000000002b},
	{0xe4ddeb92f34d6262, 0x000000ba121a4650, 0x0000000000000000},
	{0x2ae9b9f14e0b23fa, 0x000000000000031f, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002b443200000000},
	{0x71018eba31588166, 0x89a0ece3dd4e6908, 0x001098235bb9d3e5},
	{0x49f24979c250a8b3, 0x41eefc1fa7ade5d6, 0x0036e5173647459d},
	{0x1acfdbbafc04f170, 0x999b34429ee53c14, 0x0034025148ebc590},
	{0x22da8f9d4d82a4cb, 0xed8f8e21f31f1481, 0x001faa3535df608e},
	{0xf22fbd8cc193ba96, 0xcab6b9358328ea6a, 0x00212b735887ffe5},
	{0x83b0a5ed881bebd9, 0xa3538141b7104102, 0x00232e77ca8e7680},
	{0x7a2aba2edb84dc61, 0x381d07a5741ecc61, 0x00082878cb971a7c},
	{0xe0cd47a24e213ac5, 0x172e3e605ad1dc28, 0x0031ffed382309eb},
	{0xbe12d3f984156eba, 0x2c480fbddfa0185c, 0x000bafd0aed6bf44},
	{0xe3b8c587089854db, 0x90aff4138edbf1b5, 0x00330b770a3231bf},
	{0xa1b93b52a16e782a, 0xb65a883d7eaa3b8c, 0x0013c5314edb3c55},
	{0xbc97a717a7b08e4d, 0x1fe35443e1bfa420, 0x00009d389954e9a8},
	{0x6f7ab7b7ea43b86e, 0x6a8ca07c2dcb0cf2, 0x000a163ff802a342},
	{0x2634b254f1883939, 0xc44bace4a761b05b, 0x00000000002b52ad},
	{0xeb92f34d62616ce5, 0x00ba121a4650e4dd, 0x0000000000000000},
	{0xb9f14e0b23f99295, 0x00000000031f2ae9, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0035718200000000},
	{0x8eba315881653427, 0xece3dd4e69087101, 0x00249d47d3e589a0},
	{0x4979c250a8b22feb, 0xfc1fa7ade5d649f2, 0x0021aad5459d41ee},
	{0xdbbafc04f16f2b1b, 0x34429ee53c141acf, 0x0021472bc590999b},
	{0x8f9d4d82a4cae9f8, 0x8e21f31f148122da, 0x003580a9608eed8f},
	{0xbd8cc193ba95aa4f, 0xb9358328ea6af22f, 0x001df36bffe5cab6},
	{0xa5ed881bebd84b5a, 0x8141b710410283b0, 0x001cec0a7680a353},
	{0xba2edb84dc600205, 0x07a5741ecc617a2a, 0x0036bc7d1a7c381d},
	{0x47a24e213ac47d9a, 0x3e605ad1dc28e0cd, 0x000fdf6d09eb172e},
	{0xd3f984156eb9a53f, 0x0fbddfa0185cbe12, 0x002c9a2cbf442c48},
	{0xc587089854da2251, 0xf4138edbf1b5e3b8, 0x0013f4da31bf90af},
	{0x3b52a16e78299289, 0x883d7eaa3b8ca1b9, 0x002725013c55b65a},
	{0xa717a7b08e4cdce6, 0x5443e1bfa420bc97, 0x000f76b6e9a81fe3},
	{0xb7b7ea43b86daa11, 0xa07c2dcb0cf26f7a, 0x0028754ea3426a8c},
	{0xb254f18839386d37, 0xace4a761b05b2634, 0x0000002b52adc44b},
	{0xf34d62616ce41322, 0x121a4650e4ddeb92, 0x00000000000000ba},
	{0x4e0b23f99294bba6, 0x0000031f2ae9b9f1, 0x0000000000000000},
	{0x6619ba27255a2c81, 0x0000000000000d68, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002577e600000000},
	{0x3158816534261126, 0xdd4e690871018eba, 0x0037a49b89a0ece3},
	{0xc250a8b22feaa6be, 0xa7ade5d649f24979, 0x002422e341eefc1f},
	{0xfc04f16f2b1a15ac, 0x9ee53c141acfdbba, 0x00216c8e999b3442},
	{0x4d82a4cae9f7b11b, 0xf31f148122da8f9d, 0x002a8b2aed8f8e21},
	{0xc193ba95aa4e8740, 0x8328ea6af22fbd8c, 0x00137147cab6b935},
	{0x881bebd84b59f310, 0xb710410283b0a5ed, 0x0006c250a3538141},
	{0xdb84dc60020421b6, 0x741ecc617a2aba2e, 0x000ac456381d07a5},
	{0x4e213ac47d9900ff, 0x5ad1dc28e0cd47a2, 0x0010c733172e3e60},
	{0x84156eb9a53e3833, 0xdfa0185cbe12d3f9, 0x0028f7a42c480fbd},
	{0x089854da2250ffa9, 0x8edbf1b5e3b8c587, 0x0015142390aff413},
	{0xa16e782992882873, 0x7eaa3b8ca1b93b52, 0x0034eddfb65a883d},
	{0xa7b08e4cdce5b08c, 0xe1bfa420bc97a717, 0x0020be041fe35443},
	{0xea43b86daa102472, 0x2dcb0cf26f7ab7b7, 0x00119e9a6a8ca07c},
	{0xf18839386d363b24, 0xa761b05b2634b254, 0x002b52adc44bace4},
	{0x62616ce41321a019, 0x4650e4ddeb92f34d, 0x0000000000ba121a},
	{0x23f99294bba5ae40, 0x031f2ae9b9f14e0b, 0x0000000000000000},
	{0xba27255a2c80a538, 0x000000000d686619, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00350dc800000000},
	{0x8165342611258611, 0x690871018eba3158, 0x00075ec8ece3dd4e},
	{0xa8b22feaa6bdcdac, 0xe5d649f24979c250, 0x000f82e6fc1fa7ad},
	{0xf16f2b1a15abafe4, 0x3c141acfdbbafc04, 0x0007e78f34429ee5},
	{0xa4cae9f7b11ad589, 0x148122da8f9d4d82, 0x000c75958e21f31f},
	{0xba95aa4e873f4ed2, 0xea6af22fbd8cc193, 0x000f4cecb9358328},
	{0xebd84b59f30f134f, 0x410283b0a5ed881b, 0x002685cd8141b710},
	{0xdc60020421b52eb2, 0xcc617a2aba2edb84, 0x00166f3107a5741e},
	{0x3ac47d9900fe9c7f, 0xdc28e0cd47a24e21, 0x002c35583e605ad1},
	{0x6eb9a53e383249c8, 0x185cbe12d3f98415, 0x00048dc00fbddfa0},
	{0x54da2250ffa8f276, 0xf1b5e3b8c5870898, 0x000e515ff4138edb},
	{0x7829928828726654, 0x3b8ca1b93b52a16e, 0x000fce12883d7eaa},
	{0x8e4cdce5b08b69b5, 0xa420bc97a717a7b0, 0x001ce9a35443e1bf},
	{0xb86daa102471b0cf, 0x0cf26f7ab7b7ea43, 0x00353cd4a07c2dcb},
	{0x39386d363b23fee4, 0xb05b2634b254f188, 0x00061e17ace4a761},
	{0x6ce41321a0183e11, 0xe4ddeb92f34d6261, 0x000000ba121a4650},
	{0x9294bba5ae3f0330, 0x2ae9b9f14e0b23f9, 0x000000000000031f},
	{0x255a2c80a537b0f0, 0x00000d686619ba27, 0x0000000000000000},
	{0x0a6cc11ac2be832e, 0x0000000000003996, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0012419e00000000},
	{0x3426112586103eac, 0x71018eba31588165, 0x00287d1ddd4e6908},
	{0x2feaa6bdcdabb8a9, 0x49f24979c250a8b2, 0x00355f73a7ade5d6},
	{0x2b1a15abafe33ddb, 0x1acfdbbafc04f16f, 0x00073c849ee53c14},
	{0xe9f7b11ad5887e24, 0x22da8f9d4d82a4ca, 0x000986c3f31f1481},
	{0xaa4e873f4ed1ac9b, 0xf22fbd8cc193ba95, 0x0003c8cf8328ea6a},
	{0x4b59f30f134e2fa5, 0x83b0a5ed881bebd8, 0x00072bb9b7104102},
	{0x020421b52eb172d9, 0x7a2aba2edb84dc60, 0x0030dca1741ecc61},
	{0x7d9900fe9c7e3562, 0xe0cd47a24e213ac4, 0x0025466a5ad1dc28},
	{0xa53e383249c75632, 0xbe12d3f984156eb9, 0x003335b1dfa0185c},
	{0x2250ffa8f27564ef, 0xe3b8c587089854da, 0x0027a2a78edbf1b5},
	{0x9288287266533380, 0xa1b93b52a16e7829, 0x002c9eb37eaa3b8c},
	{0xdce5b08b69b4592a, 0xbc97a717a7b08e4c, 0x002f46c1e1bfa420},
	{0xaa102471b0ce9f66, 0x6f7ab7b7ea43b86d, 0x0016beb62dcb0cf2},
	{0x6d363b23fee36616, 0x2634b254f1883938, 0x0012d5a8a761b05b},
	{0x1321a0183e10583d, 0xeb92f34d62616ce4, 0x000741bc4650e4dd},
	{0xbba5ae3f032fad21, 0xb9f14e0b23f99294, 0x00000000031f2ae9},
	{0x2c80a537b0efefec, 0x0d686619ba27255a, 0x0000000000000000},
	{0xc11ac2be832d2969, 0x0000000039960a6c, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0001f72600000000},
	{0x112586103eab5040, 0x8eba315881653426, 0x0031e49c69087101},
	{0xa6bdcdabb8a8f616, 0x4979c250a8b22fea, 0x0004ae55e5d649f2},
	{0x15abafe33dda325d, 0xdbbafc04f16f2b1a, 0x001e111d3c141acf},
	{0xb11ad5887e232c41, 0x8f9d4d82a4cae9f7, 0x0018e67b148122da},
	{0x873f4ed1ac9a47b9, 0xbd8cc193ba95aa4e, 0x000095deea6af22f},
	{0xf30f134e2fa4ae41, 0xa5ed881bebd84b59, 0x0016b218410283b0},
	{0x21b52eb172d8d161, 0xba2edb84dc600204, 0x00098486cc617a2a},
	{0x00fe9c7e35618eb1, 0x47a24e213ac47d99, 0x001597e1dc28e0cd},
	{0x383249c75631c599, 0xd3f984156eb9a53e, 0x002a5976185cbe12},
	{0xffa8f27564ee62a5, 0xc587089854da2250, 0x0020be4df1b5e3b8},
	{0x28726653337f3560, 0x3b52a16e78299288, 0x00079f423b8ca1b9},
	{0xb08b69b4592909ea, 0xa717a7b08e4cdce5, 0x00387247a420bc97},
	{0x2471b0ce9f65e8ae, 0xb7b7ea43b86daa10, 0x001538eb0cf26f7a},
	{0x3b23fee366150b47, 0xb254f18839386d36, 0x0033ab79b05b2634},
	{0xa0183e10583cd332, 0xf34d62616ce41321, 0x00366b2ce4ddeb92},
	{0xae3f032fad207090, 0x4e0b23f99294bba5, 0x0000031f2ae9b9f1},
	{0xa537b0efefebdd3b, 0x6619ba27255a2c80, 0x0000000000000d68},
	{0xc2be832d2968c44b, 0x000039960a6cc11a, 0x0000000000000000},
	{0x9530e188c128d12c, 0x000000000000f754, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00005cd600000000},
	{0x86103eab503f216d, 0x3158816534261125, 0x0038696e71018eba},
	{0xcdabb8a8f615373f, 0xc250a8b22feaa6bd, 0x0030655249f24979},
	{0xafe33dda325c3a53, 0xfc04f16f2b1a15ab, 0x0032e3401acfdbba},
	{0xd5887e232c4082ba, 0x4d82a4cae9f7b11a, 0x000b1d8d22da8f9d},
	{0x4ed1ac9a47b8e308, 0xc193ba95aa4e873f, 0x0029210cf22fbd8c},
	{0x134e2fa4ae40ae6a, 0x881bebd84b59f30f, 0x0009f2be83b0a5ed},
	{0x2eb172d8d1601cb5, 0xdb84dc60020421b5, 0x002fcba17a2aba2e},
	{0x9c7e35618eb04ef4, 0x4e213ac47d9900fe, 0x0004623ce0cd47a2},
	{0x49c75631c5982b14, 0x84156eb9a53e3832, 0x002b053ebe12d3f9},
	{0xf27564ee62a46e67, 0x089854da2250ffa8, 0x002b20abe3b8c587},
	{0x6653337f355f140f, 0xa16e782992882872, 0x00234f34a1b93b52},
	{0x69b4592909e9ae01, 0xa7b08e4cdce5b08b, 0x001c928abc97a717},
	{0xb0ce9f65e8ad6934, 0xea43b86daa102471, 0x000c44f66f7ab7b7},
	{0xfee366150b46715c, 0xf18839386d363b23, 0x002236ed2634b254},
	{0x3e10583cd33148db, 0x62616ce41321a018, 0x00382ee3eb92f34d},
	{0x032fad20708f579d, 0x23f99294bba5ae3f, 0x00184ea7b9f14e0b},
	{0xb0efefebdd3a7f74, 0xba27255a2c80a537, 0x000000000d686619},
	{0x832d2968c44a9445, 0x39960a6cc11ac2be, 0x0000000000000000},
	{0xe188c128d12bee5a, 0x00000000f7549530, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002b59f400000000},
	{0x3eab503f216cd0fe, 0x8165342611258610, 0x001c59678eba3158},
	{0xb8a8f615373e3962, 0xa8b22feaa6bdcdab, 0x002b89244979c250},
	{0x3dda325c3a52e281, 0xf16f2b1a15abafe3, 0x00249ff9dbbafc04},
	{0x7e232c4082b91525, 0xa4cae9f7b11ad588, 0x0020c5b88f9d4d82},
	{0xac9a47b8e3076f40, 0xba95aa4e873f4ed1, 0x00374dfdbd8cc193},
	{0x2fa4ae40ae69892c, 0xebd84b59f30f134e, 0x000ae8eca5ed881b},
	{0x72d8d1601cb4642c, 0xdc60020421b52eb1, 0x0025ca24ba2edb84},
	{0x35618eb04ef3dee9, 0x3ac47d9900fe9c7e, 0x003a184f47a24e21},
	{0x5631c5982b13d7ea, 0x6eb9a53e383249c7, 0x001f70a0d3f98415},
	{0x64ee62a46e66747f, 0x54da2250ffa8f275, 0x00133d2ac5870898},
	{0x337f355f140e4f03, 0x7829928828726653, 0x000581f33b52a16e},
	{0x592909e9ae00a388, 0x8e4cdce5b08b69b4, 0x002ad231a717a7b0},
	{0x9f65e8ad6933b9a6, 0xb86daa102471b0ce, 0x0013c706b7b7ea43},
	{0x66150b46715bb234, 0x39386d363b23fee3, 0x00120476b254f188},
	{0x583cd33148da6149, 0x6ce41321a0183e10, 0x00029806f34d6261},
	{0xad20708f579c45aa, 0x9294bba5ae3f032f, 0x0005fd754e0b23f9},
	{0xefebdd3a7f737777, 0x255a2c80a537b0ef, 0x00000d686619ba27},
	{0x2968c44a9444a8ee, 0x0a6cc11ac2be832d, 0x0000000000003996},
	{0xc128d12bee59e68f, 0x0000f7549530e188, 0x0000000000000000},
	{0xa6fe9631f9d94f67, 0x0000000000042646, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00149b5600000000},
	{0x503f216cd0fd77d5, 0x3426112586103eab, 0x0012c7a631588165},
	{0xf615373e3961af3a, 0x2feaa6bdcdabb8a8, 0x000126a1c250a8b2},
	{0x325c3a52e28042a9, 0x2b1a15abafe33dda, 0x001e6af8fc04f16f},
	{0x2c4082b91524bcec, 0xe9f7b11ad5887e23, 0x002265534d82a4ca},
	{0x47b8e3076f3fdf88, 0xaa4e873f4ed1ac9a, 0x0006803cc193ba95},
	{0xae40ae69892bcdda, 0x4b59f30f134e2fa4, 0x001eef1f881bebd8},
	{0xd1601cb4642bbf28, 0x020421b52eb172d8, 0x0007bca2db84dc60},
	{0x8eb04ef3dee8863e, 0x7d9900fe9c7e3561, 0x0004fd7a4e213ac4},
	{0xc5982b13d7e94ad4, 0xa53e383249c75631, 0x002377a984156eb9},
	{0x62a46e66747ee530, 0x2250ffa8f27564ee, 0x0019b87d089854da},
	{0x355f140e4f02a6e2, 0x928828726653337f, 0x00291b8ca16e7829},
	{0x09e9ae00a38761fa, 0xdce5b08b69b45929, 0x000fc473a7b08e4c},
	{0xe8ad6933b9a5b136, 0xaa102471b0ce9f65, 0x001fb78dea43b86d},
	{0x0b46715bb2337397, 0x6d363b23fee36615, 0x0016af00f1883938},
	{0xd33148da61480e1c, 0x1321a0183e10583c, 0x003a1baf62616ce4},
	{0x708f579c45a9861a, 0xbba5ae3f032fad20, 0x00091d4723f99294},
	{0xdd3a7f737776be8b, 0x2c80a537b0efefeb, 0x0022ef1fba27255a},
	{0xc44a9444a8ed586d, 0xc11ac2be832d2968, 0x0000000039960a6c},
	{0xd12bee59e68ef47d, 0xf7549530e188c128, 0x0000000000000000},
	{0x9631f9d94f66cfa1, 0x000000042646a6fe, 0x0000000000000000},
	{0xd270cc51055ea7cb, 0x0000000000000011, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0017903600000000},
	{0x216cd0fd77d43bc6, 0x112586103eab503f, 0x00297cc881653426},
	{0x373e3961af39d458, 0xa6bdcdabb8a8f615, 0x0019e226a8b22fea},
	{0x3a52e28042a8de27, 0x15abafe33dda325c, 0x002f3e9cf16f2b1a},
	{0x82b91524bceb6312, 0xb11ad5887e232c40, 0x0022d8bea4cae9f7},
	{0xe3076f3fdf87720f, 0x873f4ed1ac9a47b8, 0x00325c25ba95aa4e},
	{0xae69892bcdd91f49, 0xf30f134e2fa4ae40, 0x00165a83ebd84b59},
	{0x1cb4642bbf272a6f, 0x21b52eb172d8d160, 0x002dbfc0dc600204},
	{0x4ef3dee8863d720c, 0x00fe9c7e35618eb0, 0x002b39553ac47d99},
	{0x2b13d7e94ad3a2f1, 0x383249c75631c598, 0x0032c9cd6eb9a53e},
	{0x6e66747ee52f1050, 0xffa8f27564ee62a4, 0x0009ade854da2250},
	{0x140e4f02a6e182da, 0x28726653337f355f, 0x0011e56278299288},
	{0xae00a38761f9afbb, 0xb08b69b4592909e9, 0x001988808e4cdce5},
	{0x6933b9a5b135596b, 0x2471b0ce9f65e8ad, 0x000d2349b86daa10},
	{0x715bb23373961aab, 0x3b23fee366150b46, 0x00351a5039386d36},
	{0x48da61480e1b914c, 0xa0183e10583cd331, 0x0022a12d6ce41321},
	{0x579c45a98619cbb7, 0xae3f032fad20708f, 0x0014fec79294bba5},
	{0x7f737776be8aa47f, 0xa537b0efefebdd3a, 0x00195243255a2c80},
	{0x9444a8ed586c72c9, 0xc2be832d2968c44a, 0x000039960a6cc11a},
	{0xee59e68ef47ce570, 0x9530e188c128d12b, 0x000000000000f754},
	{0xf9d94f66cfa00210, 0x00042646a6fe9631, 0x0000000000000000},
	{0xcc51055ea7ca8fd7, 0x000000000011d270, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0008dcf800000000},
	{0xd0fd77d43bc5c2b2, 0x86103eab503f216c, 0x0036a24f34261125},
	{0x3961af39d4573798, 0xcdabb8a8f615373e, 0x000612c42feaa6bd},
	{0xe28042a8de262f94, 0xafe33dda325c3a52, 0x0039ab952b1a15ab},
	{0x1524bceb63110e05, 0xd5887e232c4082b9, 0x001248a6e9f7b11a},
	{0x6f3fdf87720e1bed, 0x4ed1ac9a47b8e307, 0x0014f167aa4e873f},
	{0x892bcdd91f48989e, 0x134e2fa4ae40ae69, 0x0000f6444b59f30f},
	{0x642bbf272a6e1a9e, 0x2eb172d8d1601cb4, 0x00239fbe020421b5},
	{0xdee8863d720b8781, 0x9c7e35618eb04ef3, 0x000e7c927d9900fe},
	{0xd7e94ad3a2f0dc52, 0x49c75631c5982b13, 0x0012dbe5a53e3832},
	{0x747ee52f104f9831, 0xf27564ee62a46e66, 0x001fb3a62250ffa8},
	{0x4f02a6e182d9fad2, 0x6653337f355f140e, 0x00357a9192882872},
	{0xa38761f9afba3d8e, 0x69b4592909e9ae00, 0x0003c228dce5b08b},
	{0xb9a5b135596a4bd6, 0xb0ce9f65e8ad6933, 0x000ca06baa102471},
	{0xb23373961aaa21f2, 0xfee366150b46715b, 0x0007d43a6d363b23},
	{0x61480e1b914b0c21, 0x3e10583cd33148da, 0x002693561321a018},
	{0x45a98619cbb6e76d, 0x032fad20708f579c, 0x001df3dcbba5ae3f},
	{0x7776be8aa47e9438, 0xb0efefebdd3a7f73, 0x00063b102c80a537},
	{0xa8ed586c72c820e6, 0x832d2968c44a9444, 0x0013b186c11ac2be},
	{0xe68ef47ce56fd516, 0xe188c128d12bee59, 0x00000000f7549530},
	{0x4f66cfa0020f039c, 0x2646a6fe9631f9d9, 0x0000000000000004},
	{0x055ea7ca8fd68f6f, 0x00000011d270cc51, 0x0000000000000000},
	{0x8b888296c5f9e2bb, 0x000000000000004c, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0008bc9600000000},
	{0x77d43bc5c2b12ed1, 0x3eab503f216cd0fd, 0x002c312a11258610},
	{0xaf39d4573797bd4b, 0xb8a8f615373e3961, 0x0027f958a6bdcdab},
	{0x42a8de262f93dca5, 0x3dda325c3a52e280, 0x00063f7015abafe3},
	{0xbceb63110e043f11, 0x7e232c4082b91524, 0x000ebd71b11ad588},
	{0xdf87720e1bec494d, 0xac9a47b8e3076f3f, 0x00038290873f4ed1},
	{0xcdd91f48989dbdca, 0x2fa4ae40ae69892b, 0x002a2f4ff30f134e},
	{0xbf272a6e1a9d3725, 0x72d8d1601cb4642b, 0x003b480421b52eb1},
	{0x863d720b87803e55, 0x35618eb04ef3dee8, 0x000bb56900fe9c7e},
	{0x4ad3a2f0dc51d033, 0x5631c5982b13d7e9, 0x00275608383249c7},
	{0xe52f104f9830f070, 0x64ee62a46e66747e, 0x001aa2c0ffa8f275},
	{0xa6e182d9fad10fc9, 0x337f355f140e4f02, 0x002075a828726653},
	{0x61f9afba3d8d245a, 0x592909e9ae00a387, 0x001a787db08b69b4},
	{0xb135596a4bd572ee, 0x9f65e8ad6933b9a5, 0x000861822471b0ce},
	{0x73961aaa21f19d71, 0x66150b46715bb233, 0x0005a4f63b23fee3},
	{0x0e1b914b0c20efdd, 0x583cd33148da6148, 0x000eabd5a0183e10},
	{0x8619cbb6e76c9969, 0xad20708f579c45a9, 0x000cf773ae3f032f},
	{0xbe8aa47e943758d0, 0xefebdd3a7f737776, 0x002c5b6ca537b0ef},
	{0x586c72c820e5b373, 0x2968c44a9444a8ed, 0x000b6188c2be832d},
	{0xf47ce56fd515c9ed, 0xc128d12bee59e68e, 0x0000f7549530e188},
	{0xcfa0020f039bad4d, 0xa6fe9631f9d94f66, 0x0000000000042646},
	{0xa7ca8fd68f6e505e, 0x0011d270cc51055e, 0x0000000000000000},
	{0x8296c5f9e2ba8def, 0x00000000004c8b88, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0003c84400000000},
	{0x3bc5c2b12ed066d0, 0x503f216cd0fd77d4, 0x0027fb6386103eab},
	{0xd4573797bd4a732d, 0xf615373e3961af39, 0x0034e8a7cdabb8a8},
	{0xde262f93dca414c7, 0x325c3a52e28042a8, 0x001fc799afe33dda},
	{0x63110e043f10e8c2, 0x2c4082b91524bceb, 0x0030d18ed5887e23},
	{0x720e1bec494c01fc, 0x47b8e3076f3fdf87, 0x001234414ed1ac9a},
	{0x1f48989dbdc9a450, 0xae40ae69892bcdd9, 0x002950c3134e2fa4},
	{0x2a6e1a9d3724538b, 0xd1601cb4642bbf27, 0x001d629d2eb172d8},
	{0x720b87803e544002, 0x8eb04ef3dee8863d, 0x002e69649c7e3561},
	{0xa2f0dc51d032e441, 0xc5982b13d7e94ad3, 0x001b553e49c75631},
	{0x104f9830f06f1d55, 0x62a46e66747ee52f, 0x00135f2cf27564ee},
	{0x82d9fad10fc83114, 0x355f140e4f02a6e1, 0x0029fd986653337f},
	{0xafba3d8d2459fff8, 0x09e9ae00a38761f9, 0x00301bab69b45929},
	{0x596a4bd572ed41b4, 0xe8ad6933b9a5b135, 0x0034f205b0ce9f65},
	{0x1aaa21f19d708a6f, 0x0b46715bb2337396, 0x0003ce37fee36615},
	{0x914b0c20efdca4a7, 0xd33148da61480e1b, 0x000b19ba3e10583c},
	{0xcbb6e76c996871e6, 0x708f579c45a98619, 0x0037dd5f032fad20},
	{0xa47e943758cf6eec, 0xdd3a7f737776be8a, 0x000a83d9b0efefeb},
	{0x72c820e5b3727874, 0xc44a9444a8ed586c, 0x001fd734832d2968},
	{0xe56fd515c9ec542e, 0xd12bee59e68ef47c, 0x00107334e188c128},
	{0x020f039bad4cfbcb, 0x9631f9d94f66cfa0, 0x000000042646a6fe},
	{0x8fd68f6e505dd389, 0xd270cc51055ea7ca, 0x0000000000000011},
	{0xc5f9e2ba8dee8a97, 0x0000004c8b888296, 0x0000000000000000},
	{0xc22ca71a1bd6f0a6, 0x0000000000000148, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0027e31400000000},
	{0xc2b12ed066cf05d1, 0x216cd0fd77d43bc5, 0x002756e03eab503f},
	{0x3797bd4a732c0ee5, 0x373e3961af39d457, 0x0032cd89b8a8f615},
	{0x2f93dca414c699b8, 0x3a52e28042a8de26, 0x000830773dda325c},
	{0x0e043f10e8c11944, 0x82b91524bceb6311, 0x0023ebd07e232c40},
	{0x1bec494c01fbff9a, 0xe3076f3fdf87720e, 0x002657bbac9a47b8},
	{0x989dbdc9a44f8e44, 0xae69892bcdd91f48, 0x00327b5a2fa4ae40},
	{0x1a9d3724538a14da, 0x1cb4642bbf272a6e, 0x0016b6df72d8d160},
	{0x87803e5440010475, 0x4ef3dee8863d720b, 0x000b96a235618eb0},
	{0xdc51d032e440212f, 0x2b13d7e94ad3a2f0, 0x003780df5631c598},
	{0x9830f06f1d54944a, 0x6e66747ee52f104f, 0x001d9e3764ee62a4},
	{0xfad10fc8311352d1, 0x140e4f02a6e182d9, 0x00098e19337f355f},
	{0x3d8d2459fff79b95, 0xae00a38761f9afba, 0x0017ba3e592909e9},
	{0x4bd572ed41b3ab13, 0x6933b9a5b135596a, 0x0004e6529f65e8ad},
	{0x21f19d708a6e17bc, 0x715bb23373961aaa, 0x000e297366150b46},
	{0x0c20efdca4a6e67b, 0x48da61480e1b914b, 0x00078d8e583cd331},
	{0xe76c996871e5fe69, 0x579c45a98619cbb6, 0x0036ea99ad20708f},
	{0x943758cf6eeb28e3, 0x7f737776be8aa47e, 0x00186495efebdd3a},
	{0x20e5b372787342f4, 0x9444a8ed586c72c8, 0x000980e32968c44a},
	{0xd515c9ec542dec0a, 0xee59e68ef47ce56f, 0x003b468cc128d12b},
	{0x039bad4cfbca189d, 0xf9d94f66cfa0020f, 0x00042646a6fe9631},
	{0x8f6e505dd3883605, 0xcc51055ea7ca8fd6, 0x000000000011d270},
	{0xe2ba8dee8a96a68f, 0x004c8b888296c5f9, 0x0000000000000000},
	{0xa71a1bd6f0a5b37e, 0x000000000148c22c, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x000eb2e000000000},
	{0x2ed066cf05d0e92b, 0xd0fd77d43bc5c2b1, 0x0004f08f503f216c},
	{0xbd4a732c0ee4919d, 0x3961af39d4573797, 0x00157934f615373e},
	{0xdca414c699b76a7f, 0xe28042a8de262f93, 0x000f0522325c3a52},
	{0x3f10e8c1194353eb, 0x1524bceb63110e04, 0x002b0c1d2c4082b9},
	{0x494c01fbff9933af, 0x6f3fdf87720e1bec, 0x000f0f4e47b8e307},
	{0xbdc9a44f8e43e9c3, 0x892bcdd91f48989d, 0x001660baae40ae69},
	{0x3724538a14d99369, 0x642bbf272a6e1a9d, 0x00290cccd1601cb4},
	{0x3e5440010474794f, 0xdee8863d720b8780, 0x00236def8eb04ef3},
	{0xd032e440212e5f24, 0xd7e94ad3a2f0dc51, 0x002648ddc5982b13},
	{0xf06f1d5494498adc, 0x747ee52f104f9830, 0x0016231c62a46e66},
	{0x0fc8311352d07bf6, 0x4f02a6e182d9fad1, 0x00366865355f140e},
	{0x2459fff79b947dc6, 0xa38761f9afba3d8d, 0x0028601909e9ae00},
	{0x72ed41b3ab12bda4, 0xb9a5b135596a4bd5, 0x001066b7e8ad6933},
	{0x9d708a6e17bb0ef8, 0xb23373961aaa21f1, 0x000b79970b46715b},
	{0xefdca4a6e67a5af7, 0x61480e1b914b0c20, 0x00215fdcd33148da},
	{0x996871e5fe68a8ff, 0x45a98619cbb6e76c, 0x000d9ebe708f579c},
	{0x58cf6eeb28e2e695, 0x7776be8aa47e9437, 0x00115d43dd3a7f73},
	{0xb372787342f3e342, 0xa8ed586c72c820e5, 0x000a3a7ec44a9444},
	{0xc9ec542dec09bc14, 0xe68ef47ce56fd515, 0x000ba2ccd12bee59},
	{0xad4cfbca189c739c, 0x4f66cfa0020f039b, 0x001a434a9631f9d9},
	{0x505dd388360461c3, 0x055ea7ca8fd68f6e, 0x00000011d270cc51},
	{0x8dee8a96a68e2551, 0x8b888296c5f9e2ba, 0x000000000000004c},
	{0x1bd6f0a5b37d0be1, 0x00000148c22ca71a, 0x0000000000000000},
	{0x01c96621a4ef65ed, 0x0000000000000584, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x001955f600000000},
	{0x66cf05d0e92aeb2a, 0x77d43bc5c2b12ed0, 0x000e7cd9216cd0fd},
	{0x732c0ee4919c857a, 0xaf39d4573797bd4a, 0x00134c51373e3961},
	{0x14c699b76a7efdb1, 0x42a8de262f93dca4, 0x002b17c83a52e280},
	{0xe8c1194353ea47e3, 0xbceb63110e043f10, 0x0001bb2282b91524},
	{0x01fbff9933ae18f8, 0xdf87720e1bec494c, 0x0018926ce3076f3f},
	{0xa44f8e43e9c257d1, 0xcdd91f48989dbdc9, 0x002a0028ae69892b},
	{0x538a14d99368ff15, 0xbf272a6e1a9d3724, 0x0038c7d41cb4642b},
	{0x40010474794efa04, 0x863d720b87803e54, 0x00049ec24ef3dee8},
	{0xe440212e5f238f29, 0x4ad3a2f0dc51d032, 0x0017dacc2b13d7e9},
	{0x1d5494498adb6ad5, 0xe52f104f9830f06f, 0x000354dc6e66747e},
	{0x311352d07bf52b5c, 0xa6e182d9fad10fc8, 0x00002613140e4f02},
	{0xfff79b947dc5675e, 0x61f9afba3d8d2459, 0x000c0b0fae00a387},
	{0x41b3ab12bda3c0ce, 0xb135596a4bd572ed, 0x001559836933b9a5},
	{0x8a6e17bb0ef7993e, 0x73961aaa21f19d70, 0x0032d876715bb233},
	{0xa4a6e67a5af691ea, 0x0e1b914b0c20efdc, 0x0024628b48da6148},
	{0x71e5fe68a8fe824b, 0x8619cbb6e76c9968, 0x001ae259579c45a9},
	{0x6eeb28e2e6949834, 0xbe8aa47e943758cf, 0x000ffc727f737776},
	{0x787342f3e3412013, 0x586c72c820e5b372, 0x0014ee7e9444a8ed},
	{0x542dec09bc13453d, 0xf47ce56fd515c9ec, 0x003298b1ee59e68e},
	{0xfbca189c739be1d0, 0xcfa0020f039bad4c, 0x0012dd39f9d94f66},
	{0xd388360461c2842a, 0xa7ca8fd68f6e505d, 0x0011d270cc51055e},
	{0x8a96a68e2550b653, 0x8296c5f9e2ba8dee, 0x00000000004c8b88},
	{0xf0a5b37d0be0e9cd, 0x0148c22ca71a1bd6, 0x0000000000000000},
	{0x6621a4ef65ec6bcb, 0x00000000058401c9, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x003b03e000000000},
	{0x05d0e92aeb29f3df, 0x3bc5c2b12ed066cf, 0x0016be72d0fd77d4},
	{0x0ee4919c8579f95e, 0xd4573797bd4a732c, 0x001ddcea3961af39},
	{0x99b76a7efdb0d4de, 0xde262f93dca414c6, 0x00088dc0e28042a8},
	{0x194353ea47e2f859, 0x63110e043f10e8c1, 0x000edf231524bceb},
	{0xff9933ae18f70b4d, 0x720e1bec494c01fb, 0x000a32ed6f3fdf87},
	{0x8e43e9c257d063ed, 0x1f48989dbdc9a44f, 0x000a2f81892bcdd9},
	{0x14d99368ff140a8c, 0x2a6e1a9d3724538a, 0x00362388642bbf27},
	{0x0474794efa03ba1b, 0x720b87803e544001, 0x0036514ddee8863d},
	{0x212e5f238f285722, 0xa2f0dc51d032e440, 0x001d8b8bd7e94ad3},
	{0x94498adb6ad47de7, 0x104f9830f06f1d54, 0x00009e10747ee52f},
	{0x52d07bf52b5b263f, 0x82d9fad10fc83113, 0x001f85704f02a6e1},
	{0x9b947dc5675d75e9, 0xafba3d8d2459fff7, 0x00269406a38761f9},
	{0xab12bda3c0cd3935, 0x596a4bd572ed41b3, 0x000bfabfb9a5b135},
	{0x17bb0ef7993d8ddd, 0x1aaa21f19d708a6e, 0x0010c6d1b2337396},
	{0xe67a5af691e91ca7, 0x914b0c20efdca4a6, 0x0027786861480e1b},
	{0xfe68a8fe824a6e21, 0xcbb6e76c996871e5, 0x001ba5b645a98619},
	{0x28e2e69498336c52, 0xa47e943758cf6eeb, 0x003742e37776be8a},
	{0x42f3e34120124f3b, 0x72c820e5b3727873, 0x002148c8a8ed586c},
	{0xec09bc13453ce19e, 0xe56fd515c9ec542d, 0x0017f003e68ef47c},
	{0x189c739be1cfcfc5, 0x020f039bad4cfbca, 0x001609e74f66cfa0},
	{0x360461c284290fbb, 0x8fd68f6e505dd388, 0x001fc8a3055ea7ca},
	{0xa68e2550b652834c, 0xc5f9e2ba8dee8a96, 0x0000004c8b888296},
	{0xb37d0be0e9cc11ae, 0xc22ca71a1bd6f0a5, 0x0000000000000148},
	{0xa4ef65ec6bca6cb6, 0x0000058401c96621, 0x0000000000000000},
	{0x8617a104ee462a19, 0x00000000000017b0, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00316a1a00000000},
	{0xe92aeb29f3de227a, 0xc2b12ed066cf05d0, 0x000d76e777d43bc5},
	{0x919c8579f95dff5c, 0x3797bd4a732c0ee4, 0x0027514daf39d457},
	{0x6a7efdb0d4dd06bd, 0x2f93dca414c699b7, 0x0036ce2842a8de26},
	{0x53ea47e2f858f3ef, 0x0e043f10e8c11943, 0x001f892ebceb6311},
	{0x33ae18f70b4c27bf, 0x1bec494c01fbff99, 0x00328d7ddf87720e},
	{0xe9c257d063ecb50b, 0x989dbdc9a44f8e43, 0x00091e75cdd91f48},
	{0x9368ff140a8ba6fb, 0x1a9d3724538a14d9, 0x000e4e6fbf272a6e},
	{0x794efa03ba1a7ace, 0x87803e5440010474, 0x00314684863d720b},
	{0x5f238f2857218b37, 0xdc51d032e440212e, 0x000af5374ad3a2f0},
	{0x8adb6ad47de6a0e0, 0x9830f06f1d549449, 0x00348182e52f104f},
	{0x7bf52b5b263edc95, 0xfad10fc8311352d0, 0x003a2278a6e182d9},
	{0x7dc5675d75e81d07, 0x3d8d2459fff79b94, 0x000c6bdd61f9afba},
	{0xbda3c0cd39345161, 0x4bd572ed41b3ab12, 0x0022f2e7b135596a},
	{0x0ef7993d8ddc9cdd, 0x21f19d708a6e17bb, 0x00066b2773961aaa},
	{0x5af691e91ca6b7b9, 0x0c20efdca4a6e67a, 0x0006018c0e1b914b},
	{0xa8fe824a6e20ef83, 0xe76c996871e5fe68, 0x002047bd8619cbb6},
	{0xe69498336c517461, 0x943758cf6eeb28e2, 0x00194006be8aa47e},
	{0xe34120124f3a8445, 0x20e5b372787342f3, 0x001d1465586c72c8},
	{0xbc13453ce19dc829, 0xd515c9ec542dec09, 0x00254138f47ce56f},
	{0x739be1cfcfc49802, 0x039bad4cfbca189c, 0x002f29a0cfa0020f},
	{0x61c284290fbaa9b4, 0x8f6e505dd3883604, 0x00231acaa7ca8fd6},
	{0x2550b652834b9c88, 0xe2ba8dee8a96a68e, 0x0010f0be8296c5f9},
	{0x0be0e9cc11adcb2d, 0xa71a1bd6f0a5b37d, 0x000000000148c22c},
	{0x65ec6bca6cb5567e, 0x058401c96621a4ef, 0x0000000000000000},
	{0xa104ee462a18dff0, 0x0000000017b08617, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002e0b7200000000},
	{0xeb29f3de22796b6b, 0x2ed066cf05d0e92a, 0x00144e8c3bc5c2b1},
	{0x8579f95dff5bd979, 0xbd4a732c0ee4919c, 0x0008e40dd4573797},
	{0xfdb0d4dd06bcd248, 0xdca414c699b76a7e, 0x0003f88ade262f93},
	{0x47e2f858f3ee38c3, 0x3f10e8c1194353ea, 0x000348f763110e04},
	{0x18f70b4c27bec88a, 0x494c01fbff9933ae, 0x0010e711720e1bec},
	{0x57d063ecb50a3dfb, 0xbdc9a44f8e43e9c2, 0x0019a2b51f48989d},
	{0xff140a8ba6fa9115, 0x3724538a14d99368, 0x0002af332a6e1a9d},
	{0xfa03ba1a7acd1f79, 0x3e5440010474794e, 0x00381469720b8780},
	{0x8f2857218b364c56, 0xd032e440212e5f23, 0x00128833a2f0dc51},
	{0x6ad47de6a0dfd2a6, 0xf06f1d5494498adb, 0x0032c09b104f9830},
	{0x2b5b263edc946203, 0x0fc8311352d07bf5, 0x002b5ccb82d9fad1},
	{0x675d75e81d06aaa9, 0x2459fff79b947dc5, 0x0018bfbfafba3d8d},
	{0xc0cd393451606f71, 0x72ed41b3ab12bda3, 0x00279cb1596a4bd5},
	{0x993d8ddc9cdc5a94, 0x9d708a6e17bb0ef7, 0x0011792c1aaa21f1},
	{0x91e91ca6b7b856cc, 0xefdca4a6e67a5af6, 0x002a95ed914b0c20},
	{0x824a6e20ef825c2e, 0x996871e5fe68a8fe, 0x001d78b1cbb6e76c},
	{0x98336c5174601c24, 0x58cf6eeb28e2e694, 0x002e9896a47e9437},
	{0x20124f3a84440d16, 0xb372787342f3e341, 0x001a09ba72c820e5},
	{0x453ce19dc828cadb, 0xc9ec542dec09bc13, 0x00037ee8e56fd515},
	{0xe1cfcfc498015ecf, 0xad4cfbca189c739b, 0x0031f4ca020f039b},
	{0x84290fbaa9b3caa9, 0x505dd388360461c2, 0x003a2e588fd68f6e},
	{0xb652834b9c87897a, 0x8dee8a96a68e2550, 0x000a6582c5f9e2ba},
	{0xe9cc11adcb2c1361, 0x1bd6f0a5b37d0be0, 0x00000148c22ca71a},
	{0x6bca6cb5567d9ff1, 0x01c96621a4ef65ec, 0x0000000000000584},
	{0xee462a18dfef0551, 0x000017b08617a104, 0x0000000000000000},
	{0xee6ed136d13454cb, 0x00000000000065be, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002940ec00000000},
	{0xf3de22796b6aa0f8, 0x66cf05d0e92aeb29, 0x0023545fc2b12ed0},
	{0xf95dff5bd978c889, 0x732c0ee4919c8579, 0x00226d413797bd4a},
	{0xd4dd06bcd247a209, 0x14c699b76a7efdb0, 0x0000fd1a2f93dca4},
	{0xf858f3ee38c2dc1d, 0xe8c1194353ea47e2, 0x003703c30e043f10},
	{0x0b4c27bec889e08d, 0x01fbff9933ae18f7, 0x0024ba1e1bec494c},
	{0x63ecb50a3dfabeeb, 0xa44f8e43e9c257d0, 0x00249ac4989dbdc9},
	{0x0a8ba6fa91147a8d, 0x538a14d99368ff14, 0x001ddbe81a9d3724},
	{0xba1a7acd1f78e7c3, 0x40010474794efa03, 0x00130c7387803e54},
	{0x57218b364c558b52, 0xe440212e5f238f28, 0x000b6500dc51d032},
	{0x7de6a0dfd2a5d15a, 0x1d5494498adb6ad4, 0x0030ad0b9830f06f},
	{0x263edc9462028ae3, 0x311352d07bf52b5b, 0x0020dcb7fad10fc8},
	{0x75e81d06aaa8f435, 0xfff79b947dc5675d, 0x0031b28c3d8d2459},
	{0x393451606f70bbc7, 0x41b3ab12bda3c0cd, 0x003841604bd572ed},
	{0x8ddc9cdc5a9357f5, 0x8a6e17bb0ef7993d, 0x0007ab3221f19d70},
	{0x1ca6b7b856cbb135, 0xa4a6e67a5af691e9, 0x001949050c20efdc},
	{0x6e20ef825c2d264d, 0x71e5fe68a8fe824a, 0x000ce2eee76c9968},
	{0x6c5174601c23750d, 0x6eeb28e2e6949833, 0x00357b3e943758cf},
	{0x4f3a84440d153559, 0x787342f3e3412012, 0x000512b620e5b372},
	{0xe19dc828cada40b2, 0x542dec09bc13453c, 0x00243f11d515c9ec},
	{0xcfc498015eced44e, 0xfbca189c739be1cf, 0x0019af39039bad4c},
	{0x0fbaa9b3caa86b86, 0xd388360461c28429, 0x002b6f828f6e505d},
	{0x834b9c8789798f9f, 0x8a96a68e2550b652, 0x00061433e2ba8dee},
	{0x11adcb2c136039f2, 0xf0a5b37d0be0e9cc, 0x001ebc3aa71a1bd6},
	{0x6cb5567d9ff09d2f, 0x6621a4ef65ec6bca, 0x00000000058401c9},
	{0x2a18dfef0550706b, 0x17b08617a104ee46, 0x0000000000000000},
	{0xd136d13454ca17af, 0x0000000065beee6e, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x003085b400000000},
	{0x22796b6aa0f775b2, 0x05d0e92aeb29f3de, 0x0011558f2ed066cf},
	{0xff5bd978c88897ed, 0x0ee4919c8579f95d, 0x002633ffbd4a732c},
	{0x06bcd247a2080c0e, 0x99b76a7efdb0d4dd, 0x0003efdddca414c6},
	{0xf3ee38c2dc1cde4b, 0x194353ea47e2f858, 0x0011b26a3f10e8c1},
	{0x27bec889e08c5bbf, 0xff9933ae18f70b4c, 0x002ef2ca494c01fb},
	{0xb50a3dfabeeaa810, 0x8e43e9c257d063ec, 0x00087537bdc9a44f},
	{0xa6fa91147a8c6ba6, 0x14d99368ff140a8b, 0x00139db13724538a},
	{0x7acd1f78e7c228d4, 0x0474794efa03ba1a, 0x000bd9603e544001},
	{0x8b364c558b51a26c, 0x212e5f238f285721, 0x0019def1d032e440},
	{0xa0dfd2a5d1590b33, 0x94498adb6ad47de6, 0x002e9c5af06f1d54},
	{0xdc9462028ae2ca54, 0x52d07bf52b5b263e, 0x0014f4690fc83113},
	{0x1d06aaa8f434c5bb, 0x9b947dc5675d75e8, 0x00373d992459fff7},
	{0x51606f70bbc686cd, 0xab12bda3c0cd3934, 0x001a33f372ed41b3},
	{0x9cdc5a9357f41f2d, 0x17bb0ef7993d8ddc, 0x00335f5b9d708a6e},
	{0xb7b856cbb1343144, 0xe67a5af691e91ca6, 0x00185166efdca4a6},
	{0xef825c2d264caf7d, 0xfe68a8fe824a6e20, 0x00304bfc996871e5},
	{0x74601c23750ce1eb, 0x28e2e69498336c51, 0x001aa6f958cf6eeb},
	{0x84440d15355804c4, 0x42f3e34120124f3a, 0x0037064bb3727873},
	{0xc828cada40b18bd9, 0xec09bc13453ce19d, 0x0011ec93c9ec542d},
	{0x98015eced44d9217, 0x189c739be1cfcfc4, 0x0015d87bad4cfbca},
	{0xa9b3caa86b859ebf, 0x360461c284290fba, 0x00378a2c505dd388},
	{0x9c8789798f9e45f5, 0xa68e2550b652834b, 0x00320b6c8dee8a96},
	{0xcb2c136039f1e6fb, 0xb37d0be0e9cc11ad, 0x002ee4501bd6f0a5},
	{0x567d9ff09d2e4358, 0xa4ef65ec6bca6cb5, 0x0000058401c96621},
	{0xdfef0550706a6d68, 0x8617a104ee462a18, 0x00000000000017b0},
	{0xd13454ca17aee7bf, 0x000065beee6ed136, 0x0000000000000000},
	{0xb7eb212cd0915e74, 0x000000000001b4fe, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0030338400000000},
	{0x6b6aa0f775b1a1bd, 0xe92aeb29f3de2279, 0x000a421266cf05d0},
	{0xd978c88897ec498a, 0x919c8579f95dff5b, 0x002e3d82732c0ee4},
	{0xd247a2080c0dcf0a, 0x6a7efdb0d4dd06bc, 0x002cf59414c699b7},
	{0x38c2dc1cde4a5666, 0x53ea47e2f858f3ee, 0x003aac46e8c11943},
	{0xc889e08c5bbe8f90, 0x33ae18f70b4c27be, 0x001285e401fbff99},
	{0x3dfabeeaa80fb408, 0xe9c257d063ecb50a, 0x0020264ba44f8e43},
	{0x91147a8c6ba5b331, 0x9368ff140a8ba6fa, 0x00003ca4538a14d9},
	{0x1f78e7c228d3603c, 0x794efa03ba1a7acd, 0x000eee6c40010474},
	{0x4c558b51a26b8a71, 0x5f238f2857218b36, 0x0013b150e440212e},
	{0xd2a5d1590b321b85, 0x8adb6ad47de6a0df, 0x00047fc51d549449},
	{0x62028ae2ca531d16, 0x7bf52b5b263edc94, 0x0039a692311352d0},
	{0xaaa8f434c5ba62b0, 0x7dc5675d75e81d06, 0x0029d50ffff79b94},
	{0x6f70bbc686ccdb94, 0xbda3c0cd39345160, 0x0019a20941b3ab12},
	{0x5a9357f41f2ceafb, 0x0ef7993d8ddc9cdc, 0x0026dc088a6e17bb},
	{0x56cbb13431435d8a, 0x5af691e91ca6b7b8, 0x00358cb2a4a6e67a},
	{0x5c2d264caf7c2b90, 0xa8fe824a6e20ef82, 0x0036c09c71e5fe68},
	{0x1c23750ce1eaa8ae, 0xe69498336c517460, 0x001ad61f6eeb28e2},
	{0x0d15355804c3daff, 0xe34120124f3a8444, 0x000ab12a787342f3},
	{0xcada40b18bd8e3e6, 0xbc13453ce19dc828, 0x002f0dde542dec09},
	{0x5eced44d921667e4, 0x739be1cfcfc49801, 0x001fb6cefbca189c},
	{0xcaa86b859ebe7b7a, 0x61c284290fbaa9b3, 0x00231379d3883604},
	{0x89798f9e45f4ee8f, 0x2550b652834b9c87, 0x0026948e8a96a68e},
	{0x136039f1e6fa8507, 0x0be0e9cc11adcb2c, 0x0007d55af0a5b37d},
	{0x9ff09d2e4357b221, 0x65ec6bca6cb5567d, 0x002919a36621a4ef},
	{0x0550706a6d675e0a, 0xa104ee462a18dfef, 0x0000000017b08617},
	{0x54ca17aee7befe85, 0x65beee6ed136d134, 0x0000000000000000},
	{0x212cd0915e7348eb, 0x00000001b4feb7eb, 0x0000000000000000},
	{0x54e113b91f745e5b, 0x0000000000000007, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0030a40e00000000},
	{0xa0f775b1a1bced76, 0xeb29f3de22796b6a, 0x003537c305d0e92a},
	{0xc88897ec4989e071, 0x8579f95dff5bd978, 0x002ab4720ee4919c},
	{0xa2080c0dcf095686, 0xfdb0d4dd06bcd247, 0x000fad0c99b76a7e},
	{0xdc1cde4a56659b29, 0x47e2f858f3ee38c2, 0x0023ab8b194353ea},
	{0xe08c5bbe8f8fce1e, 0x18f70b4c27bec889, 0x000fcfefff9933ae},
	{0xbeeaa80fb4073e32, 0x57d063ecb50a3dfa, 0x0032a8878e43e9c2},
	{0x7a8c6ba5b3303b42, 0xff140a8ba6fa9114, 0x001b1e6214d99368},
	{0xe7c228d3603b9fe0, 0xfa03ba1a7acd1f78, 0x000acbf70474794e},
	{0x8b51a26b8a70e8da, 0x8f2857218b364c55, 0x00111f78212e5f23},
	{0xd1590b321b848672, 0x6ad47de6a0dfd2a5, 0x00308aa094498adb},
	{0x8ae2ca531d158c15, 0x2b5b263edc946202, 0x002292c552d07bf5},
	{0xf434c5ba62af1a90, 0x675d75e81d06aaa8, 0x00045d099b947dc5},
	{0xbbc686ccdb93b045, 0xc0cd393451606f70, 0x002b8d8dab12bda3},
	{0x57f41f2ceafa7c8d, 0x993d8ddc9cdc5a93, 0x001c7cf217bb0ef7},
	{0xb13431435d898941, 0x91e91ca6b7b856cb, 0x00185e3ae67a5af6},
	{0x264caf7c2b8f3b92, 0x824a6e20ef825c2d, 0x0034d455fe68a8fe},
	{0x750ce1eaa8adcb3c, 0x98336c5174601c23, 0x0038c8d728e2e694},
	{0x355804c3dafe461a, 0x20124f3a84440d15, 0x0002443b42f3e341},
	{0x40b18bd8e3e50962, 0x453ce19dc828cada, 0x00246d3dec09bc13},
	{0xd44d921667e33d81, 0xe1cfcfc498015ece, 0x0001052e189c739b},
	{0x6b859ebe7b797369, 0x84290fbaa9b3caa8, 0x0021188c360461c2},
	{0x8f9e45f4ee8e8586, 0xb652834b9c878979, 0x001d1d58a68e2550},
	{0x39f1e6fa8506d41a, 0xe9cc11adcb2c1360, 0x0037bd3db37d0be0},
	{0x9d2e4357b220c209, 0x6bca6cb5567d9ff0, 0x00058065a4ef65ec},
	{0x706a6d675e093f43, 0xee462a18dfef0550, 0x000017b08617a104},
	{0x17aee7befe84d32e, 0xee6ed136d13454ca, 0x00000000000065be},
	{0xd0915e7348eaa0d6, 0x0001b4feb7eb212c, 0x0000000000000000},
	{0x13b91f745e5a32f1, 0x00000000000754e1, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0009fe2600000000},
	{0x75b1a1bced757da0, 0xf3de22796b6aa0f7, 0x00247166e92aeb29},
	{0x97ec4989e0700e09, 0xf95dff5bd978c888, 0x001d9140919c8579},
	{0x0c0dcf095685f1a5, 0xd4dd06bcd247a208, 0x00368c396a7efdb0},
	{0xde4a56659b28583f, 0xf858f3ee38c2dc1c, 0x0028890553ea47e2},
	{0x5bbe8f8fce1dd3cf, 0x0b4c27bec889e08c, 0x002d3fbf33ae18f7},
	{0xa80fb4073e319aac, 0x63ecb50a3dfabeea, 0x00187245e9c257d0},
	{0x6ba5b3303b411637, 0x0a8ba6fa91147a8c, 0x0012635f9368ff14},
	{0x28d3603b9fdf5e07, 0xba1a7acd1f78e7c2, 0x0008477e794efa03},
	{0xa26b8a70e8d9dae2, 0x57218b364c558b51, 0x0033164a5f238f28},
	{0x0b321b848671397a, 0x7de6a0dfd2a5d159, 0x0039153b8adb6ad4},
	{0xca531d158c14fd37, 0x263edc9462028ae2, 0x002df62e7bf52b5b},
	{0xc5ba62af1a8f0d56, 0x75e81d06aaa8f434, 0x002620727dc5675d},
	{0x86ccdb93b0449d99, 0x393451606f70bbc6, 0x0039a606bda3c0cd},
	{0x1f2ceafa7c8c15d5, 0x8ddc9cdc5a9357f4, 0x003968b70ef7993d},
	{0x31435d89894056ac, 0x1ca6b7b856cbb134, 0x003b41ea5af691e9},
	{0xaf7c2b8f3b916869, 0x6e20ef825c2d264c, 0x002298eca8fe824a},
	{0xe1eaa8adcb3bc89a, 0x6c5174601c23750c, 0x000f29c4e6949833},
	{0x04c3dafe46196432, 0x4f3a84440d153558, 0x00047c9be3412012},
	{0x8bd8e3e509619311, 0xe19dc828cada40b1, 0x00244b4bbc13453c},
	{0x921667e33d806012, 0xcfc498015eced44d, 0x002d4a12739be1cf},
	{0x9ebe7b797368c6b3, 0x0fbaa9b3caa86b85, 0x0012cad261c28429},
	{0x45f4ee8e85853851, 0x834b9c8789798f9e, 0x00345de02550b652},
	{0xe6fa8506d419d324, 0x11adcb2c136039f1, 0x00370bcb0be0e9cc},
	{0x4357b220c2087472, 0x6cb5567d9ff09d2e, 0x000125e565ec6bca},
	{0x6d675e093f429439, 0x2a18dfef0550706a, 0x002c7465a104ee46},
	{0xe7befe84d32da8f2, 0xd136d13454ca17ae, 0x0000000065beee6e},
	{0x5e7348eaa0d5133e, 0xb4feb7eb212cd091, 0x0000000000000001},
	{0x1f745e5a32f0ad4c, 0x0000000754e113b9, 0x0000000000000000},
	{0x7d228322baf5244a, 0x000000000000001f, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0009c49200000000},
	{0xa1bced757d9f56e2, 0x22796b6aa0f775b1, 0x001c6638eb29f3de},
	{0x4989e0700e08f749, 0xff5bd978c88897ec, 0x00292bfa8579f95d},
	{0xcf095685f1a41e8c, 0x06bcd247a2080c0d, 0x0034d878fdb0d4dd},
	{0x56659b28583e904e, 0xf3ee38c2dc1cde4a, 0x003984fa47e2f858},
	{0x8f8fce1dd3cec609, 0x27bec889e08c5bbe, 0x0030850818f70b4c},
	{0xb4073e319aabe8d1, 0xb50a3dfabeeaa80f, 0x0004aa8c57d063ec},
	{0xb3303b41163656b1, 0xa6fa91147a8c6ba5, 0x0000de24ff140a8b},
	{0x603b9fdf5e06289c, 0x7acd1f78e7c228d3, 0x00096478fa03ba1a},
	{0x8a70e8d9dae1da3d, 0x8b364c558b51a26b, 0x0031797f8f285721},
	{0x1b84867139797707, 0xa0dfd2a5d1590b32, 0x001538ed6ad47de6},
	{0x1d158c14fd36d76f, 0xdc9462028ae2ca53, 0x0015c2af2b5b263e},
	{0x62af1a8f0d554245, 0x1d06aaa8f434c5ba, 0x002fc845675d75e8},
	{0xdb93b0449d988cbf, 0x51606f70bbc686cc, 0x000e54e9c0cd3934},
	{0xeafa7c8c15d4b24d, 0x9cdc5a9357f41f2c, 0x0036468d993d8ddc},
	{0x5d89894056abbe3e, 0xb7b856cbb1343143, 0x0011546291e91ca6},
	{0x2b8f3b9168681b16, 0xef825c2d264caf7c, 0x000bf90e824a6e20},
	{0xa8adcb3bc8998a7e, 0x74601c23750ce1ea, 0x0004435498336c51},
	{0xdafe46196431d576, 0x84440d15355804c3, 0x000e2ccf20124f3a},
	{0xe3e5096193108b4d, 0xc828cada40b18bd8, 0x00306289453ce19d},
	{0x67e33d80601123e0, 0x98015eced44d9216, 0x00098f73e1cfcfc4},
	{0x7b797368c6b20fa3, 0xa9b3caa86b859ebe, 0x0013362684290fba},
	{0xee8e8585385014d5, 0x9c8789798f9e45f4, 0x002f8376b652834b},
	{0x8506d419d3234870, 0xcb2c136039f1e6fa, 0x002f2172e9cc11ad},
	{0xb220c20874714a11, 0x567d9ff09d2e4357, 0x001056206bca6cb5},
	{0x5e093f429438a930, 0xdfef0550706a6d67, 0x0019cd38ee462a18},
	{0xfe84d32da8f13373, 0xd13454ca17aee7be, 0x000065beee6ed136},
	{0x48eaa0d5133d4606, 0xb7eb212cd0915e73, 0x000000000001b4fe},
	{0x5e5a32f0ad4bce0f, 0x000754e113b91f74, 0x0000000000000000},
	{0x8322baf524497e40, 0x00000000001f7d22, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0033b84200000000},
	{0xed757d9f56e1a7eb, 0x6b6aa0f775b1a1bc, 0x0015e2aff3de2279},
	{0xe0700e08f74849d5, 0xd978c88897ec4989, 0x00337631f95dff5b},
	{0x5685f1a41e8ba048, 0xd247a2080c0dcf09, 0x0014b600d4dd06bc},
	{0x9b28583e904d1bbe, 0x38c2dc1cde4a5665, 0x0011bb34f858f3ee},
	{0xce1dd3cec608ecf8, 0xc889e08c5bbe8f8f, 0x00371cd90b4c27be},
	{0x3e319aabe8d0d25e, 0x3dfabeeaa80fb407, 0x002083ec63ecb50a},
	{0x3b41163656b012e0, 0x91147a8c6ba5b330, 0x00062a500a8ba6fa},
	{0x9fdf5e06289b559a, 0x1f78e7c228d3603b, 0x0007cf5dba1a7acd},
	{0xe8d9dae1da3c3261, 0x4c558b51a26b8a70, 0x0035b28657218b36},
	{0x8671397977061f98, 0xd2a5d1590b321b84, 0x000ea2d87de6a0df},
	{0x8c14fd36d76e05a6, 0x62028ae2ca531d15, 0x00360b09263edc94},
	{0x1a8f0d554244c5a8, 0xaaa8f434c5ba62af, 0x000c2e6375e81d06},
	{0xb0449d988cbef908, 0x6f70bbc686ccdb93, 0x00335d8b39345160},
	{0x7c8c15d4b24c0db4, 0x5a9357f41f2ceafa, 0x0026d1258ddc9cdc},
	{0x894056abbe3d4d6c, 0x56cbb13431435d89, 0x0007ab1d1ca6b7b8},
	{0x3b9168681b15434c, 0x5c2d264caf7c2b8f, 0x0012f7126e20ef82},
	{0xcb3bc8998a7d960c, 0x1c23750ce1eaa8ad, 0x000d9fdd6c517460},
	{0x46196431d57561de, 0x0d15355804c3dafe, 0x0024bc884f3a8444},
	{0x096193108b4c1c2f, 0xcada40b18bd8e3e5, 0x002dc5e6e19dc828},
	{0x3d80601123df543c, 0x5eced44d921667e3, 0x002b75f9cfc49801},
	{0x7368c6b20fa2933a, 0xcaa86b859ebe7b79, 0x00119acb0fbaa9b3},
	{0x8585385014d4d9e2, 0x89798f9e45f4ee8e, 0x002876e8834b9c87},
	{0xd419d323486ff678, 0x136039f1e6fa8506, 0x002a389411adcb2c},
	{0xc20874714a10d2c5, 0x9ff09d2e4357b220, 0x0005caa66cb5567d},
	{0x3f429438a92f9937, 0x0550706a6d675e09, 0x000cc35c2a18dfef},
	{0xd32da8f1337226df, 0x54ca17aee7befe84, 0x003b4e66d136d134},
	{0xa0d5133d46052999, 0x212cd0915e7348ea, 0x00000001b4feb7eb},
	{0x32f0ad4bce0e56e1, 0x54e113b91f745e5a, 0x0000000000000007},
	{0xbaf524497e3ff3e1, 0x0000001f7d228322, 0x0000000000000000},
	{0x3e4f75e2224e685b, 0x0000000000000087, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x001c452c00000000},
	{0x7d9f56e1a7ea032e, 0xa0f775b1a1bced75, 0x001562a822796b6a},
	{0x0e08f74849d41e7a, 0xc88897ec4989e070, 0x002bf6a1ff5bd978},
	{0xf1a41e8ba0470d54, 0xa2080c0dcf095685, 0x0037771f06bcd247},
	{0x583e904d1bbd2234, 0xdc1cde4a56659b28, 0x002c6b92f3ee38c2},
	{0xd3cec608ecf73267, 0xe08c5bbe8f8fce1d, 0x0002627a27bec889},
	{0x9aabe8d0d25d15e8, 0xbeeaa80fb4073e31, 0x003a56f0b50a3dfa},
	{0x163656b012dffc72, 0x7a8c6ba5b3303b41, 0x002fc247a6fa9114},
	{0x5e06289b559911a4, 0xe7c228d3603b9fdf, 0x000ca46c7acd1f78},
	{0xdae1da3c3260fdde, 0x8b51a26b8a70e8d9, 0x00341ce18b364c55},
	{0x397977061f97ee42, 0xd1590b321b848671, 0x00228c4ea0dfd2a5},
	{0xfd36d76e05a5fa73, 0x8ae2ca531d158c14, 0x00018d5cdc946202},
	{0x0d554244c5a7ce33, 0xf434c5ba62af1a8f, 0x001673fe1d06aaa8},
	{0x9d988cbef907a59d, 0xbbc686ccdb93b044, 0x00334e1c51606f70},
	{0x15d4b24c0db33059, 0x57f41f2ceafa7c8c, 0x002aeb769cdc5a93},
	{0x56abbe3d4d6b6667, 0xb13431435d898940, 0x001e5a10b7b856cb},
	{0x68681b15434bdb26, 0x264caf7c2b8f3b91, 0x00166098ef825c2d},
	{0xc8998a7d960bec89, 0x750ce1eaa8adcb3b, 0x000fd82974601c23},
	{0x6431d57561dd7df4, 0x355804c3dafe4619, 0x00097f6a84440d15},
	{0x93108b4c1c2ef72f, 0x40b18bd8e3e50961, 0x000051adc828cada},
	{0x601123df543b3d9a, 0xd44d921667e33d80, 0x0029dc6a98015ece},
	{0xc6b20fa29339ad96, 0x6b859ebe7b797368, 0x001f8ea2a9b3caa8},
	{0x385014d4d9e1cb6d, 0x8f9e45f4ee8e8585, 0x000a431d9c878979},
	{0xd323486ff677328d, 0x39f1e6fa8506d419, 0x001d3fd1cb2c1360},
	{0x74714a10d2c43481, 0x9d2e4357b220c208, 0x0037a6bf567d9ff0},
	{0x9438a92f993683cf, 0x706a6d675e093f42, 0x000c2f2edfef0550},
	{0xa8f1337226de2f1f, 0x17aee7befe84d32d, 0x0036bed0d13454ca},
	{0x133d46052998526a, 0xd0915e7348eaa0d5, 0x0001b4feb7eb212c},
	{0xad4bce0e56e05068, 0x13b91f745e5a32f0, 0x00000000000754e1},
	{0x24497e3ff3e00c58, 0x001f7d228322baf5, 0x0000000000000000},
	{0x75e2224e685a7745, 0x0000000000873e4f, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0018d39200000000},
	{0x56e1a7ea032d4ad6, 0x75b1a1bced757d9f, 0x001c1f3f6b6aa0f7},
	{0xf74849d41e794511, 0x97ec4989e0700e08, 0x0010ada7d978c888},
	{0x1e8ba0470d53578e, 0x0c0dcf095685f1a4, 0x002d5e8cd247a208},
	{0x904d1bbd2233430f, 0xde4a56659b28583e, 0x00201a1e38c2dc1c},
	{0xc608ecf73266fbbd, 0x5bbe8f8fce1dd3ce, 0x003a619cc889e08c},
	{0xe8d0d25d15e74387, 0xa80fb4073e319aab, 0x0004c4a03dfabeea},
	{0x56b012dffc71c668, 0x6ba5b3303b411636, 0x001c268491147a8c},
	{0x289b559911a38070, 0x28d3603b9fdf5e06, 0x0013ead51f78e7c2},
	{0xda3c3260fddda8f6, 0xa26b8a70e8d9dae1, 0x00269b824c558b51},
	{0x77061f97ee4109cb, 0x0b321b8486713979, 0x0000978bd2a5d159},
	{0xd76e05a5fa72f687, 0xca531d158c14fd36, 0x0027567062028ae2},
	{0x4244c5a7ce323746, 0xc5ba62af1a8f0d55, 0x001a3f70aaa8f434},
	{0x8cbef907a59cb0ae, 0x86ccdb93b0449d98, 0x00224e5c6f70bbc6},
	{0xb24c0db33058f04a, 0x1f2ceafa7c8c15d4, 0x002f6d005a9357f4},
	{0xbe3d4d6b6666dd5f, 0x31435d89894056ab, 0x000a832056cbb134},
	{0x1b15434bdb2563d4, 0xaf7c2b8f3b916868, 0x0008416a5c2d264c},
	{0x8a7d960bec88f427, 0xe1eaa8adcb3bc899, 0x0004f01e1c23750c},
	{0xd57561dd7df33154, 0x04c3dafe46196431, 0x0032d0e00d153558},
	{0x8b4c1c2ef72e1eb9, 0x8bd8e3e509619310, 0x003027fccada40b1},
	{0x23df543b3d9935dc, 0x921667e33d806011, 0x0027369d5eced44d},
	{0x0fa29339ad953ed8, 0x9ebe7b797368c6b2, 0x001c4d99caa86b85},
	{0x14d4d9e1cb6ca21c, 0x45f4ee8e85853850, 0x0016678989798f9e},
	{0x486ff677328c887d, 0xe6fa8506d419d323, 0x003805b6136039f1},
	{0x4a10d2c4348044e4, 0x4357b220c2087471, 0x0012ba8b9ff09d2e},
	{0xa92f993683ce2e92, 0x6d675e093f429438, 0x002f0da70550706a},
	{0x337226de2f1e19b8, 0xe7befe84d32da8f1, 0x000a6f2a54ca17ae},
	{0x460529985269ccc6, 0x5e7348eaa0d5133d, 0x003467a3212cd091},
	{0xce0e56e050674140, 0x1f745e5a32f0ad4b, 0x0000000754e113b9},
	{0x7e3ff3e00c57550f, 0x7d228322baf52449, 0x000000000000001f},
	{0x224e685a7744a6e9, 0x000000873e4f75e2, 0x0000000000000000},
	{0xddb0db666656f88d, 0x0000000000000244, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00399dc000000000},
	{0xa7ea032d4ad5ab07, 0xa1bced757d9f56e1, 0x001fcd9aa0f775b1},
	{0x49d41e7945106308, 0x4989e0700e08f748, 0x0001dfa4c88897ec},
	{0xa0470d53578dd4e8, 0xcf095685f1a41e8b, 0x0006b8afa2080c0d},
	{0x1bbd2233430e2aec, 0x56659b28583e904d, 0x0020ae02dc1cde4a},
	{0xecf73266fbbc7a4a, 0x8f8fce1dd3cec608, 0x0036a29de08c5bbe},
	{0xd25d15e74386ea22, 0xb4073e319aabe8d0, 0x0020b1b6beeaa80f},
	{0x12dffc71c667f233, 0xb3303b41163656b0, 0x002d34ce7a8c6ba5},
	{0x559911a3806f8f26, 0x603b9fdf5e06289b, 0x001301cae7c228d3},
	{0x3260fddda8f54475, 0x8a70e8d9dae1da3c, 0x0014bb6b8b51a26b},
	{0x1f97ee4109cafbcd, 0x1b84867139797706, 0x0034cdc1d1590b32},
	{0x05a5fa72f686272f, 0x1d158c14fd36d76e, 0x000c497a8ae2ca53},
	{0xc5a7ce323745e0c2, 0x62af1a8f0d554244, 0x002e391af434c5ba},
	{0xf907a59cb0ad0ff8, 0xdb93b0449d988cbe, 0x0038d6cabbc686cc},
	{0x0db33058f0496bcc, 0xeafa7c8c15d4b24c, 0x000c26e957f41f2c},
	{0x4d6b6666dd5ed301, 0x5d89894056abbe3d, 0x0011dacfb1343143},
	{0x434bdb2563d3ef40, 0x2b8f3b9168681b15, 0x0002ffdb264caf7c},
	{0x960bec88f426b2d6, 0xa8adcb3bc8998a7d, 0x00147e51750ce1ea},
	{0x61dd7df33153fc0e, 0xdafe46196431d575, 0x00295695355804c3},
	{0x1c2ef72e1eb8ec53, 0xe3e5096193108b4c, 0x00120f9240b18bd8},
	{0x543b3d9935dbdf18, 0x67e33d80601123df, 0x001f1c60d44d9216},
	{0x9339ad953ed7880f, 0x7b797368c6b20fa2, 0x0024d9d26b859ebe},
	{0xd9e1cb6ca21bf25d, 0xee8e8585385014d4, 0x0038527f8f9e45f4},
	{0xf677328c887cf566, 0x8506d419d323486f, 0x000ac57e39f1e6fa},
	{0xd2c4348044e3fbda, 0xb220c20874714a10, 0x0018c7909d2e4357},
	{0x993683ce2e915c7a, 0x5e093f429438a92f, 0x0028b92a706a6d67},
	{0x26de2f1e19b782b1, 0xfe84d32da8f13372, 0x0021d8aa17aee7be},
	{0x29985269ccc580ff, 0x48eaa0d5133d4605, 0x002b1a2ed0915e73},
	{0x56e05067413f5609, 0x5e5a32f0ad4bce0e, 0x000754e113b91f74},
	{0xf3e00c57550e0c52, 0x8322baf524497e3f, 0x00000000001f7d22},
	{0x685a7744a6e804a3, 0x00873e4f75e2224e, 0x0000000000000000},
	{0xdb666656f88c4021, 0x000000000244ddb0, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00295bae00000000},
	{0x032d4ad5ab06983a, 0xed757d9f56e1a7ea, 0x003703d175b1a1bc},
	{0x1e7945106307c35c, 0xe0700e08f74849d4, 0x0003371097ec4989},
	{0x0d53578dd4e72fb8, 0x5685f1a41e8ba047, 0x00114edc0c0dcf09},
	{0x2233430e2aebcb3f, 0x9b28583e904d1bbd, 0x002c5e4ede4a5665},
	{0x3266fbbc7a49aa4d, 0xce1dd3cec608ecf7, 0x0003a7fc5bbe8f8f},
	{0x15e74386ea215683, 0x3e319aabe8d0d25d, 0x0026947ca80fb407},
	{0xfc71c667f2321b3d, 0x3b41163656b012df, 0x003136fc6ba5b330},
	{0x11a3806f8f25791d, 0x9fdf5e06289b5599, 0x001909ee28d3603b},
	{0xfddda8f544743ee2, 0xe8d9dae1da3c3260, 0x000baaa3a26b8a70},
	{0xee4109cafbcc06af, 0x8671397977061f97, 0x001359f50b321b84},
	{0xfa72f686272e0dc5, 0x8c14fd36d76e05a5, 0x002b6570ca531d15},
	{0xce323745e0c19af4, 0x1a8f0d554244c5a7, 0x002fb278c5ba62af},
	{0xa59cb0ad0ff78e1f, 0xb0449d988cbef907, 0x000a755086ccdb93},
	{0x3058f0496bcb8b9a, 0x7c8c15d4b24c0db3, 0x000faf4a1f2ceafa},
	{0x6666dd5ed300cd47, 0x894056abbe3d4d6b, 0x001ce91e31435d89},
	{0xdb2563d3ef3fd56d, 0x3b9168681b15434b, 0x0036a2c2af7c2b8f},
	{0xec88f426b2d5cc61, 0xcb3bc8998a7d960b, 0x002d99e4e1eaa8ad},
	{0x7df33153fc0d46a4, 0x46196431d57561dd, 0x00327faa04c3dafe},
	{0xf72e1eb8ec52ee7f, 0x096193108b4c1c2e, 0x0005377d8bd8e3e5},
	{0x3d9935dbdf1788d1, 0x3d80601123df543b, 0x002c59a1921667e3},
	{0xad953ed7880e4da9, 0x7368c6b20fa29339, 0x003907139ebe7b79},
	{0xcb6ca21bf25cd7e0, 0x8585385014d4d9e1, 0x003a542245f4ee8e},
	{0x328c887cf565951f, 0xd419d323486ff677, 0x00146b13e6fa8506},
	{0x348044e3fbd98a69, 0xc20874714a10d2c4, 0x0018112c4357b220},
	{0x83ce2e915c793cb6, 0x3f429438a92f9936, 0x002c78246d675e09},
	{0x2f1e19b782b0dd81, 0xd32da8f1337226de, 0x001ad782e7befe84},
	{0x5269ccc580fe85bc, 0xa0d5133d46052998, 0x001b181b5e7348ea},
	{0x5067413f5608f96f, 0x32f0ad4bce0e56e0, 0x000809171f745e5a},
	{0x0c57550e0c51663c, 0xbaf524497e3ff3e0, 0x0000001f7d228322},
	{0x7744a6e804a291cd, 0x3e4f75e2224e685a, 0x0000000000000087},
	{0x6656f88c402026e8, 0x00000244ddb0db66, 0x0000000000000000},
	{0xcce62836ac5774ef, 0x00000000000009be, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x002bfcf600000000},
	{0x4ad5ab069839610f, 0x7d9f56e1a7ea032d, 0x00201a17a1bced75},
	{0x45106307c35b386c, 0x0e08f74849d41e79, 0x00022c964989e070},
	{0x578dd4e72fb75fc1, 0xf1a41e8ba0470d53, 0x0017a831cf095685},
	{0x430e2aebcb3ef5d3, 0x583e904d1bbd2233, 0x00217b7456659b28},
	{0xfbbc7a49aa4c5975, 0xd3cec608ecf73266, 0x0001afb68f8fce1d},
	{0x4386ea215682bc3a, 0x9aabe8d0d25d15e7, 0x000b3ad1b4073e31},
	{0xc667f2321b3cb6bd, 0x163656b012dffc71, 0x000de1e5b3303b41},
	{0x806f8f25791c4c68, 0x5e06289b559911a3, 0x001a49ef603b9fdf},
	{0xa8f544743ee1a847, 0xdae1da3c3260fddd, 0x001edb1d8a70e8d9},
	{0x09cafbcc06aeadff, 0x397977061f97ee41, 0x000504501b848671},
	{0xf686272e0dc4d294, 0xfd36d76e05a5fa72, 0x0028c4ff1d158c14},
	{0x3745e0c19af3bbd8, 0x0d554244c5a7ce32, 0x002262ec62af1a8f},
	{0xb0ad0ff78e1e947b, 0x9d988cbef907a59c, 0x003a5228db93b044},
	{0xf0496bcb8b99eb44, 0x15d4b24c0db33058, 0x002005caeafa7c8c},
	{0xdd5ed300cd46bbbf, 0x56abbe3d4d6b6666, 0x002159555d898940},
	{0x63d3ef3fd56cc3fd, 0x68681b15434bdb25, 0x002876ec2b8f3b91},
	{0xf426b2d5cc60b566, 0xc8998a7d960bec88, 0x003b33e6a8adcb3b},
	{0x3153fc0d46a3b494, 0x6431d57561dd7df3, 0x003553a5dafe4619},
	{0x1eb8ec52ee7e2b40, 0x93108b4c1c2ef72e, 0x0034e892e3e50961},
	{0x35dbdf1788d07d9c, 0x601123df543b3d99, 0x001c470867e33d80},
	{0x3ed7880e4da8a673, 0xc6b20fa29339ad95, 0x00212ef27b797368},
	{0xa21bf25cd7df13a3, 0x385014d4d9e1cb6c, 0x00019702ee8e8585},
	{0x887cf565951ebfc9, 0xd323486ff677328c, 0x0007a0868506d419},
	{0x44e3fbd98a685448, 0x74714a10d2c43480, 0x0002272bb220c208},
	{0x2e915c793cb55ec6, 0x9438a92f993683ce, 0x001eecfb5e093f42},
	{0x19b782b0dd803f1f, 0xa8f1337226de2f1e, 0x0036a0eefe84d32d},
	{0xccc580fe85bb90a5, 0x133d460529985269, 0x0015004748eaa0d5},
	{0x413f5608f96e19cd, 0xad4bce0e56e05067, 0x000816165e5a32f0},
	{0x550e0c51663b0c5b, 0x24497e3ff3e00c57, 0x001f7d228322baf5},
	{0xa6e804a291cc35ee, 0x75e2224e685a7744, 0x0000000000873e4f},
	{0xf88c402026e7087f, 0x0244ddb0db666656, 0x0000000000000000},
	{0x2836ac5774ee3680, 0x0000000009becce6, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x001b5afe00000000},
	{0xab069839610e7c8a, 0x56e1a7ea032d4ad5, 0x001a16fced757d9f},
	{0x6307c35b386b12a4, 0xf74849d41e794510, 0x001f2fade0700e08},
	{0xd4e72fb75fc0f1d3, 0x1e8ba0470d53578d, 0x000964bb5685f1a4},
	{0x2aebcb3ef5d2ff36, 0x904d1bbd2233430e, 0x0006f1d99b28583e},
	{0x7a49aa4c597403c9, 0xc608ecf73266fbbc, 0x000b8ca3ce1dd3ce},
	{0xea215682bc399cb9, 0xe8d0d25d15e74386, 0x000f27793e319aab},
	{0xf2321b3cb6bcc241, 0x56b012dffc71c667, 0x003401ba3b411636},
	{0x8f25791c4c6755dc, 0x289b559911a3806f, 0x0032b92b9fdf5e06},
	{0x44743ee1a8463d17, 0xda3c3260fddda8f5, 0x001a5cb4e8d9dae1},
	{0xfbcc06aeadfee2c0, 0x77061f97ee4109ca, 0x0004e30c86713979},
	{0x272e0dc4d293b91a, 0xd76e05a5fa72f686, 0x00214e918c14fd36},
	{0xe0c19af3bbd7cacb, 0x4244c5a7ce323745, 0x000ff9cf1a8f0d55},
	{0x0ff78e1e947a2cb0, 0x8cbef907a59cb0ad, 0x00209dbbb0449d98},
	{0x6bcb8b99eb439718, 0xb24c0db33058f049, 0x000efae07c8c15d4},
	{0xd300cd46bbbe0500, 0xbe3d4d6b6666dd5e, 0x0021dafb894056ab},
	{0xef3fd56cc3fc0476, 0x1b15434bdb2563d3, 0x000deb613b916868},
	{0xb2d5cc60b5658bbe, 0x8a7d960bec88f426, 0x0005e971cb3bc899},
	{0xfc0d46a3b49382d8, 0xd57561dd7df33153, 0x0016b7e446196431},
	{0xec52ee7e2b3fcc84, 0x8b4c1c2ef72e1eb8, 0x001de3c309619310},
	{0xdf1788d07d9b96ed, 0x23df543b3d9935db, 0x001865253d806011},
	{0x880e4da8a6724000, 0x0fa29339ad953ed7, 0x001f04877368c6b2},
	{0xf25cd7df13a29519, 0x14d4d9e1cb6ca21b, 0x0006034685853850},
	{0xf565951ebfc881d8, 0x486ff677328c887c, 0x0001f7f2d419d323},
	{0xfbd98a685447daa8, 0x4a10d2c4348044e3, 0x000f806ac2087471},
	{0x5c793cb55ec511b3, 0xa92f993683ce2e91, 0x000aa18b3f429438},
	{0x82b0dd803f1eaf7d, 0x337226de2f1e19b7, 0x00319c44d32da8f1},
	{0x80fe85bb90a43f33, 0x460529985269ccc5, 0x00380976a0d5133d},
	{0x5608f96e19cc7b17, 0xce0e56e05067413f, 0x0039139632f0ad4b},
	{0x0c51663b0c5ae5f8, 0x7e3ff3e00c57550e, 0x00128036baf52449},
	{0x04a291cc35eddfd0, 0x224e685a7744a6e8, 0x000000873e4f75e2},
	{0x402026e7087e866f, 0xddb0db666656f88c, 0x0000000000000244},
	{0xac5774ee367f9431, 0x000009becce62836, 0x0000000000000000},
	{0x1608ce3b49886bcb, 0x00000000000029db, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x0025195e00000000},
	{0x9839610e7c895746, 0xa7ea032d4ad5ab06, 0x000216697d9f56e1},
	{0xc35b386b12a37dd4, 0x49d41e7945106307, 0x002636460e08f748},
	{0x2fb75fc0f1d2752a, 0xa0470d53578dd4e7, 0x000e9115f1a41e8b},
	{0xcb3ef5d2ff35a10c, 0x1bbd2233430e2aeb, 0x003024aa583e904d},
	{0xaa4c597403c835cf, 0xecf73266fbbc7a49, 0x00280699d3cec608},
	{0x5682bc399cb8e416, 0xd25d15e74386ea21, 0x000ca6d59aabe8d0},
	{0x1b3cb6bcc240d017, 0x12dffc71c667f232, 0x00016f15163656b0},
	{0x791c4c6755db3d34, 0x559911a3806f8f25, 0x003495db5e06289b},
	{0x3ee1a8463d16404b, 0x3260fddda8f54474, 0x001c47dfdae1da3c},
	{0x06aeadfee2bf7e87, 0x1f97ee4109cafbcc, 0x000cc4cf39797706},
	{0x0dc4d293b919082d, 0x05a5fa72f686272e, 0x0013d9d2fd36d76e},
	{0x9af3bbd7caca0481, 0xc5a7ce323745e0c1, 0x002384ad0d554244},
	{0x8e1e947a2caf8230, 0xf907a59cb0ad0ff7, 0x003185b29d988cbe},
	{0x8b99eb4397173df2, 0x0db33058f0496bcb, 0x0027fcb015d4b24c},
	{0xcd46bbbe04ffe34e, 0x4d6b6666dd5ed300, 0x00183d3056abbe3d},
	{0xd56cc3fc0475fcbb, 0x434bdb2563d3ef3f, 0x0023bfc168681b15},
	{0xcc60b5658bbd1598, 0x960bec88f426b2d5, 0x000b9a53c8998a7d},
	{0x46a3b49382d73b5c, 0x61dd7df33153fc0d, 0x0003da1b6431d575},
	{0xee7e2b3fcc83a0a1, 0x1c2ef72e1eb8ec52, 0x0003fda193108b4c},
	{0x88d07d9b96ecf15a, 0x543b3d9935dbdf17, 0x00297544601123df},
	{0x4da8a6723fff505f, 0x9339ad953ed7880e, 0x0012a538c6b20fa2},
	{0xd7df13a295189c30, 0xd9e1cb6ca21bf25c, 0x00083707385014d4},
	{0x951ebfc881d7e2fb, 0xf677328c887cf565, 0x001a6091d323486f},
	{0x8a685447daa72178, 0xd2c4348044e3fbd9, 0x000d314074714a10},
	{0x3cb55ec511b2b120, 0x993683ce2e915c79, 0x003828b29438a92f},
	{0xdd803f1eaf7c0fed, 0x26de2f1e19b782b0, 0x000e442fa8f13372},
	{0x85bb90a43f3274ba, 0x29985269ccc580fe, 0x0011a653133d4605},
	{0xf96e19cc7b1670e5, 0x56e05067413f5608, 0x00111c88ad4bce0e},
	{0x663b0c5ae5f77b82, 0xf3e00c57550e0c51, 0x0034a6a324497e3f},
	{0x91cc35eddfcf0997, 0x685a7744a6e804a2, 0x001008bb75e2224e},
	{0x26e7087e866eaa71, 0xdb666656f88c4020, 0x000000000244ddb0},
	{0x74ee367f9430aec4, 0x09becce62836ac57, 0x0000000000000000},
	{0xce3b49886bcabcaf, 0x0000000029db1608, 0x0000000000000000},
	{0x0000000000000001, 0x0000000000000000, 0x00348a2400000000},
	{0x610e7c895745fbd2, 0x032d4ad5ab069839, 0x0010d4b956e1a7ea},
	{0x386b12a37dd3b17c, 0x1e7945106307c35b, 0x0020825cf74849d4},
	{0x5fc0f1d27529582b, 0x0d53578dd4e72fb7, 0x0011f4041e8ba047},
	{0xf5d2ff35a10beccb, 0x2233430e2aebcb3e, 0x00021402904d1bbd},
	{0x597403c835cec08e, 0x3266fbbc7a49aa4c, 0x00309ebec608ecf7},
	{0xbc399cb8e41556ab, 0x15e74386ea215682, 0x0028fecfe8d0d25d},
	{0xb6bcc240d016f615, 0xfc71c667f2321b3c, 0x00242aa656b012df},
	{0x4c6755db3d33d7f8, 0x11a3806f8f25791c, 0x000e0402289b5599},
	{0xa8463d16404a362c, 0xfddda8f544743ee1, 0x00016cfbda3c3260},
	{0xadfee2bf7e869d62, 0xee4109cafbcc06ae, 0x00199dd377061f97},
	{0xd293b919082c552d, 0xfa72f686272e0dc4, 0x00100322d76e05a5},
	{0xbbd7caca04807a9c, 0xce323745e0c19af3, 0x002c76dd4244c5a7},
	{0x947a2caf822faf35, 0xa59cb0ad0ff78e1e, 0x0011b5248cbef907},
	{0xeb4397173df121a5, 0x3058f0496bcb8b99, 0x000e45e8b24c0db3},
	{0xbbbe04ffe34dd889, 0x6666dd5ed300cd46, 0x0004f35dbe3d4d6b},
	{0xc3fc0475fcba1873, 0xdb2563d3ef3fd56c, 0x001d3d841b15434b},
	{0xb5658bbd15972099, 0xec88f426b2d5cc60, 0x001b54878a7d960b},
	{0xb49382d73b5b2759, 0x7df33153fc0d46a3, 0x0011b883d57561dd},
	{0x2b3fcc83a0a0a28e, 0xf72e1eb8ec52ee7e, 0x0033ff728b4c1c2e},
	{0x7d9b96ecf15998a2, 0x3d9935dbdf1788d0, 0x0025da3b23df543b},
	{0xa6723fff505e84fe, 0xad953ed7880e4da8, 0x00318eea0fa29339},
	{0x13a295189c2f3155, 0xcb6ca21bf25cd7df, 0x001a118014d4d9e1},
	{0xbfc881d7e2fa5436, 0x328c887cf565951e, 0x0003eabf486ff677},
	{0x5447daa7217750f8, 0x348044e3fbd98a68, 0x000b15174a10d2c4},
	{0x5ec511b2b11fb126, 0x83ce2e915c793cb5, 0x001a93faa92f9936},
	{0x3f1eaf7c0fece459, 0x2f1e19b782b0dd80, 0x000133b5337226de},
	{0x90a43f3274b915e2, 0x5269ccc580fe85bb, 0x000356b146052998},
	{0x19cc7b1670e45a0a, 0x5067413f5608f96e, 0x000ee3dfce0e56e0},
	{0x0c5ae5f77b81c16c, 0x0c57550e0c51663b, 0x001241757e3ff3e0},
	{0x35eddfcf0996d779, 0x7744a6e804a291cc, 0x00292d80224e685a},
	{0x087e866eaa70e7b5, 0x6656f88c402026e7, 0x00000244ddb0db66},
	{0x367f9430aec32bf0, 0xcce62836ac5774ee, 0x00000000000009be},
	{0x49886bcabcae02be, 0x000029db1608ce3b, 0x0000000000000000},
	{0xf1ba87bc86968f49, 0x000000000000b3c4, 0x0000000000000000},
}

var pow10Offset2 = [69]uint16{
	0, 2, 6, 12, 19, 28, 39, 52, 67, 83,
	101, 120, 141, 162, 185, 209, 234, 261, 288, 317,
	347, 379, 411, 445, 480, 517, 555, 594, 634, 676,
	719, 762, 807, 853, 901, 950, 1000, 1051, 1104, 1158,
	1213, 1269, 1327, 1386, 1447, 1508, 1570, 1634, 1699, 1765,
	1832, 1901, 1971, 2043, 2115, 2189, 2264, 2341, 2418, 2496,
	2576, 2657, 2740, 2823, 2908, 2994, 3082, 3170, 3260,
}

var minBlock2 = [68]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 2, 2, 3, 4, 4, 5, 5, 6,
	6, 7, 7, 8, 8, 9, 9, 10, 10, 11,
	12, 12, 13, 13, 14, 14, 15, 15, 16, 16,
	17, 17, 18, 18, 19, 20, 20, 21, 21, 22,
	22, 23, 23, 24, 24, 25, 25, 26, 27, 27,
	28, 28, 29, 29, 30, 30, 31, 31,
}

var pow10Split2 = [3260][3]uint64{
	{0x0000000000000000, 0x0000000000000000, 0x00000000003b9aca},
	{0x0000000000000000, 0x0000000000000000, 0x000de0b6b3a76400},
	{0x0000000000000000, 0x9aca000000000000, 0x000000000000003b},
	{0x0000000000000000, 0x6400000000000000, 0x0000000de0b6b3a7},
	{0x0000000000000000, 0x0000000000000000, 0x002a89dfd0803ce8},
	{0x0000000000000000, 0x0000000000000000, 0x001ddb934b9f1000},
	{0x0000000000000000, 0x003b9aca00000000, 0x0000000000000000},
	{0x0000000000000000, 0xb3a7640000000000, 0x00000000000de0b6},
	{0x0000000000000000, 0x3ce8000000000000, 0x00033b2e3c9fd080},
	{0x0000000000000000, 0x1000000000000000, 0x002535af15b34b9f},
	{0x0000000000000000, 0x0000000000000000, 0x0029bed6a00b22a0},
	{0x0000000000000000, 0x0000000000000000, 0x000297b67d924000},
	{0x0000000000000000, 0x0000003b9aca0000, 0x0000000000000000},
	{0x0000000000000000, 0xe0b6b3a764000000, 0x000000000000000d},
	{0x0000000000000000, 0xd0803ce800000000, 0x000000033b2e3c9f},
	{0x0000000000000000, 0x4b9f100000000000, 0x000ac3edc90715b3},
	{0x0000000000000000, 0x22a0000000000000, 0x0001a648f768a00b},
	{0x0000000000000000, 0x4000000000000000, 0x00185c2565f67d92},
	{0x0000000000000000, 0x0000000000000000, 0x003963fabdcfe680},
	{0x0000000000000000, 0x00000000003b9aca, 0x0000000000000000},
	{0x0000000000000000, 0x000de0b6b3a76400, 0x0000000000000000},
	{0x0000000000000000, 0x3c9fd0803ce80000, 0x0000000000033b2e},
	{0x0000000000000000, 0x15b34b9f10000000, 0x0000c097ce7bc907},
	{0x0000000000000000, 0xa00b22a000000000, 0x001cd22d3ce2f768},
	{0x0000000000000000, 0x7d92400000000000, 0x0034d841090b65f6},
	{0x0000000000000000, 0xe680000000000000, 0x0002a76423acbdcf},
	{0x0000000000000000, 0x0000000000000000, 0x0028383166f634e1},
	{0x0000000000000000, 0x0000000000000000, 0x0039530df0138a00},
	{0x9aca000000000000, 0x000000000000003b, 0x0000000000000000},
	{0x6400000000000000, 0x0000000de0b6b3a7, 0x0000000000000000},
	{0x0000000000000000, 0x3b2e3c9fd0803ce8, 0x0000000000000003},
	{0x0000000000000000, 0xc90715b34b9f1000, 0x00000000c097ce7b},
	{0x0000000000000000, 0xf768a00b22a00000, 0x0023586086b93ce2},
	{0x0000000000000000, 0x65f67d9240000000, 0x002b21091999090b},
	{0x0000000000000000, 0xbdcfe68000000000, 0x0023a19dd27e23ac},
	{0x0000000000000000, 0x34e1000000000000, 0x001d5e7dcdcf66f6},
	{0x0000000000000000, 0x8a00000000000000, 0x00304a225589f013},
	{0x0000000000000000, 0x0000000000000000, 0x00201dbbc3fe6ee4},
	{0x0000000000000000, 0x0000000000000000, 0x003b3d6604a7e800},
	{0x003b9aca00000000, 0x0000000000000000, 0x0000000000000000},
	{0xb3a7640000000000, 0x00000000000de0b6, 0x0000000000000000},
	{0x3ce8000000000000, 0x00033b2e3c9fd080, 0x0000000000000000},
	{0x1000000000000000, 0xce7bc90715b34b9f, 0x000000000000c097},
	{0x0000000000000000, 0x3ce2f768a00b22a0, 0x00002cd76fe086b9},
	{0x0000000000000000, 0x090b65f67d924000, 0x003446cee6c51999},
	{0x0000000000000000, 0x23acbdcfe6800000, 0x002de4133157d27e},
	{0x0000000000000000, 0x66f634e100000000, 0x0014729cfe31cdcf},
	{0x0000000000000000, 0xf0138a0000000000, 0x000b988be7e45589},
	{0x0000000000000000, 0x6ee4000000000000, 0x003529c66acdc3fe},
	{0x0000000000000000, 0xe800000000000000, 0x002fe895e74404a7},
	{0x0000000000000000, 0x0000000000000000, 0x000fd6332b260d10},
	{0x0000000000000000, 0x0000000000000000, 0x0008dc0491eea000},
	{0x0000003b9aca0000, 0x0000000000000000, 0x0000000000000000},
	{0xe0b6b3a764000000, 0x000000000000000d, 0x0000000000000000},
	{0xd0803ce800000000, 0x000000033b2e3c9f, 0x0000000000000000},
	{0x4b9f100000000000, 0xc097ce7bc90715b3, 0x0000000000000000},
	{0x22a0000000000000, 0x86b93ce2f768a00b, 0x000000002cd76fe0},
	{0x4000000000000000, 0x1999090b65f67d92, 0x0032290c0a64e6c5},
	{0x0000000000000000, 0xd27e23acbdcfe680, 0x00177e31dd8f3157},
	{0x0000000000000000, 0xcdcf66f634e10000, 0x002156f3e946fe31},
	{0x0000000000000000, 0x5589f0138a000000, 0x0010878268f7e7e4},
	{0x0000000000000000, 0xc3fe6ee400000000, 0x0039b856bc0c6acd},
	{0x0000000000000000, 0x04a7e80000000000, 0x0002e41f7839e744},
	{0x0000000000000000, 0x0d10000000000000, 0x000d7b4f7c792b26},
	{0x0000000000000000, 0xa000000000000000, 0x001c363555f291ee},
	{0x0000000000000000, 0x0000000000000000, 0x00387a4d2f928a40},
	{0x0000000000000000, 0x0000000000000000, 0x00221e778b968000},
	{0x00000000003b9aca, 0x0000000000000000, 0x0000000000000000},
	{0x000de0b6b3a76400, 0x0000000000000000, 0x0000000000000000},
	{0x3c9fd0803ce80000, 0x0000000000033b2e, 0x0000000000000000},
	{0x15b34b9f10000000, 0x0000c097ce7bc907, 0x0000000000000000},
	{0xa00b22a000000000, 0x6fe086b93ce2f768, 0x0000000000002cd7},
	{0x7d92400000000000, 0xe6c51999090b65f6, 0x00000a70c3c40a64},
	{0xe680000000000000, 0x3157d27e23acbdcf, 0x002da4ee3215dd8f},
	{0x0000000000000000, 0xfe31cdcf66f634e1, 0x000517488955e946},
	{0x0000000000000000, 0xe7e45589f0138a00, 0x001400b57b5c68f7},
	{0x0000000000000000, 0x6acdc3fe6ee40000, 0x001584113266bc0c},
	{0x0000000000000000, 0xe74404a7e8000000, 0x0017eb750c777839},
	{0x0000000000000000, 0x2b260d1000000000, 0x001bd0f1efff7c79},
	{0x0000000000000000, 0x91eea00000000000, 0x003b7c2a660d55f2},
	{0x0000000000000000, 0x8a40000000000000, 0x00031adf215f2f92},
	{0x0000000000000000, 0x8000000000000000, 0x001629847f8d8b96},
	{0x0000000000000000, 0x0000000000000000, 0x0020f4c1582dc100},
	{0x000000000000003c, 0x0000000000000000, 0x0000000000000000},
	{0x0000000de0b6b3a8, 0x0000000000000000, 0x0000000000000000},
	{0x3b2e3c9fd0803ce8, 0x0000000000000003, 0x0000000000000000},
	{0xc90715b34b9f1000, 0x00000000c097ce7b, 0x0000000000000000},
	{0xf768a00b22a00000, 0x2cd76fe086b93ce2, 0x0000000000000000},
	{0x65f67d9240000000, 0x0a64e6c51999090b, 0x000000000a70c3c4},
	{0xbdcfe68000000000, 0xdd8f3157d27e23ac, 0x001a414ceccc3215},
	{0x34e1000000000000, 0xe946fe31cdcf66f6, 0x002f8b024abc8955},
	{0x8a00000000000000, 0x68f7e7e45589f013, 0x002be5a62ecf7b5c},
	{0x0000000000000000, 0xbc0c6acdc3fe6ee4, 0x00304ee2391f3266},
	{0x0000000000000000, 0x7839e74404a7e800, 0x0007437a9ce90c77},
	{0x0000000000000000, 0x7c792b260d100000, 0x003642c8ec69efff},
	{0x0000000000000000, 0x55f291eea0000000, 0x0018aa5dd8c0660d},
	{0x0000000000000000, 0x2f928a4000000000, 0x002ccbda475b215f},
	{0x0000000000000000, 0x8b96800000000000, 0x001537caeb8e7f8d},
	{0x0000000000000000, 0xc100000000000000, 0x00212d8ecaf7582d},
	{0x0000000000000000, 0x0000000000000000, 0x003996e0c295344a},
	{0x0000000000000000, 0x0000000000000000, 0x0022bd443dc66400},
	{0x00000000000de0b7, 0x0000000000000000, 0x0000000000000000},
	{0x00033b2e3c9fd081, 0x0000000000000000, 0x0000000000000000},
	{0xce7bc90715b34ba0, 0x000000000000c097, 0x0000000000000000},
	{0x3ce2f768a00b22a0, 0x00002cd76fe086b9, 0x0000000000000000},
	{0x090b65f67d924000, 0xc3c40a64e6c51999, 0x0000000000000a70},
	{0x23acbdcfe6800000, 0x3215dd8f3157d27e, 0x0000026e4d30eccc},
	{0x66f634e100000000, 0x8955e946fe31cdcf, 0x000b64281d3a4abc},
	{0xf0138a0000000000, 0x7b5c68f7e7e45589, 0x000d9278680a2ecf},
	{0x6ee4000000000000, 0x3266bc0c6acdc3fe, 0x00025ef2032e391f},
	{0xe800000000000000, 0x0c777839e74404a7, 0x000ac31d06749ce9},
	{0x0000000000000000, 0xefff7c792b260d10, 0x001b26ac1de0ec69},
	{0x0000000000000000, 0x660d55f291eea000, 0x00345e7c1c95d8c0},
	{0x0000000000000000, 0x215f2f928a400000, 0x0022e38ef84a475b},
	{0x0000000000000000, 0x7f8d8b9680000000, 0x00114b5b89d0eb8e},
	{0x0000000000000000, 0x582dc10000000000, 0x0030a49c64fccaf7},
	{0x0000000000000000, 0x344a000000000000, 0x003adba09244c295},
	{0x0000000000000000, 0x6400000000000000, 0x0010026bb2583dc6},
	{0x0000000000000000, 0x0000000000000000, 0x00148b978322b2e8},
	{0x0000000000000000, 0x0000000000000000, 0x0008143678bb1000},
	{0x000000000000000e, 0x0000000000000000, 0x0000000000000000},
	{0x000000033b2e3ca0, 0x0000000000000000, 0x0000000000000000},
	{0xc097ce7bc90715b4, 0x0000000000000000, 0x0000000000000000},
	{0x86b93ce2f768a00c, 0x000000002cd76fe0, 0x0000000000000000},
	{0x1999090b65f67d93, 0x0a70c3c40a64e6c5, 0x0000000000000000},
	{0xd27e23acbdcfe680, 0xeccc3215dd8f3157, 0x00000000026e4d30},
	{0xcdcf66f634e10000, 0x4abc8955e946fe31, 0x0019ae7bbeea1d3a},
	{0x5589f0138a000000, 0x2ecf7b5c68f7e7e4, 0x0036824abf5a680a},
	{0xc3fe6ee400000000, 0x391f3266bc0c6acd, 0x00150ca44502032e},
	{0x04a7e80000000000, 0x9ce90c777839e744, 0x000077f3277b0674},
	{0x0d10000000000000, 0xec69efff7c792b26, 0x001ca4dfd5681de0},
	{0xa000000000000000, 0xd8c0660d55f291ee, 0x00183dd6f75e1c95},
	{0x0000000000000000, 0x475b215f2f928a40, 0x0015e97dfda6f84a},
	{0x0000000000000000, 0xeb8e7f8d8b968000, 0x0026e02e3b0b89d0},
	{0x0000000000000000, 0xcaf7582dc1000000, 0x0002afbd28b664fc},
	{0x0000000000000000, 0xc295344a00000000, 0x002a778eee889244},
	{0x0000000000000000, 0x3dc6640000000000, 0x001fcc49999fb258},
	{0x0000000000000000, 0xb2e8000000000000, 0x00252ea9a20b8322},
	{0x0000000000000000, 0x1000000000000000, 0x0002ae2ef79478bb},
	{0x0000000000000000, 0x0000000000000000, 0x00229198e47b3aa0},
	{0x0000000000000000, 0x0000000000000000, 0x001cb10560824000},
	{0x0000000000033b2f, 0x0000000000000000, 0x0000000000000000},
	{0x0000c097ce7bc908, 0x0000000000000000, 0x0000000000000000},
	{0x6fe086b93ce2f769, 0x0000000000002cd7, 0x0000000000000000},
	{0xe6c51999090b65f7, 0x00000a70c3c40a64, 0x0000000000000000},
	{0x3157d27e23acbdd0, 0x4d30eccc3215dd8f, 0x000000000000026e},
	{0xfe31cdcf66f634e1, 0x1d3a4abc8955e946, 0x00000090e40fbeea},
	{0xe7e45589f0138a00, 0x680a2ecf7b5c68f7, 0x0003aa853a36bf5a},
	{0x6acdc3fe6ee40000, 0x032e391f3266bc0c, 0x000cbf34255a4502},
	{0xe74404a7e8000000, 0x06749ce90c777839, 0x0015047c3465277b},
	{0x2b260d1000000000, 0x1de0ec69efff7c79, 0x00178d42eba5d568},
	{0x91eea00000000000, 0x1c95d8c0660d55f2, 0x00269c7439e8f75e},
	{0x8a40000000000000, 0xf84a475b215f2f92, 0x00363ddf5263fda6},
	{0x8000000000000000, 0x89d0eb8e7f8d8b96, 0x001747eaf7d03b0b},
	{0x0000000000000000, 0x64fccaf7582dc100, 0x00307b837c4b28b6},
	{0x0000000000000000, 0x9244c295344a0000, 0x00117fd3d51eee88},
	{0x0000000000000000, 0xb2583dc664000000, 0x000733ad6015999f},
	{0x0000000000000000, 0x8322b2e800000000, 0x000507774363a20b},
	{0x0000000000000000, 0x78bb100000000000, 0x00173296c002f794},
	{0x0000000000000000, 0x3aa0000000000000, 0x0000b0da7e7ee47b},
	{0x0000000000000000, 0x4000000000000000, 0x001d8b61f8ed6082},
	{0x0000000000000000, 0x0000000000000000, 0x003744c561414680},
	{0x0000000000000004, 0x0000000000000000, 0x0000000000000000},
	{0x00000000c097ce7c, 0x0000000000000000, 0x0000000000000000},
	{0x2cd76fe086b93ce3, 0x0000000000000000, 0x0000000000000000},
	{0x0a64e6c51999090c, 0x000000000a70c3c4, 0x0000000000000000},
	{0xdd8f3157d27e23ad, 0x026e4d30eccc3215, 0x0000000000000000},
	{0xe946fe31cdcf66f7, 0xbeea1d3a4abc8955, 0x000000000090e40f},
	{0x68f7e7e45589f014, 0xbf5a680a2ecf7b5c, 0x0021bc2b266d3a36},
	{0xbc0c6acdc3fe6ee4, 0x4502032e391f3266, 0x00196e75d2f8255a},
	{0x7839e74404a7e800, 0x277b06749ce90c77, 0x0039c6a613ae3465},
	{0x7c792b260d100000, 0xd5681de0ec69efff, 0x00288f684a4aeba5},
	{0x55f291eea0000000, 0xf75e1c95d8c0660d, 0x0011719c17e239e8},
	{0x2f928a4000000000, 0xfda6f84a475b215f, 0x0034ac2208d95263},
	{0x8b96800000000000, 0x3b0b89d0eb8e7f8d, 0x00329964169ef7d0},
	{0xc100000000000000, 0x28b664fccaf7582d, 0x0025033b80697c4b},
	{0x0000000000000000, 0xee889244c295344a, 0x00188f6d53abd51e},
	{0x0000000000000000, 0x999fb2583dc66400, 0x00280203ebbf6015},
	{0x0000000000000000, 0xa20b8322b2e80000, 0x002c8edbc9374363},
	{0x0000000000000000, 0xf79478bb10000000, 0x000cddf21b74c002},
	{0x0000000000000000, 0xe47b3aa000000000, 0x001b2ed8505a7e7e},
	{0x0000000000000000, 0x6082400000000000, 0x001511debecdf8ed},
	{0x0000000000000000, 0x4680000000000000, 0x002ff4e8fa756141},
	{0x0000000000000000, 0x0000000000000000, 0x001b54632b416aa1},
	{0x0000000000000000, 0x0000000000000000, 0x000f3b20ddfd0a00},
	{0x000000000000c098, 0x0000000000000000, 0x0000000000000000},
	{0x00002cd76fe086ba, 0x0000000000000000, 0x0000000000000000},
	{0xc3c40a64e6c5199a, 0x0000000000000a70, 0x0000000000000000},
	{0x3215dd8f3157d27f, 0x0000026e4d30eccc, 0x0000000000000000},
	{0x8955e946fe31cdd0, 0xe40fbeea1d3a4abc, 0x0000000000000090},
	{0x7b5c68f7e7e4558a, 0x3a36bf5a680a2ecf, 0x00000021bc2b266d},
	{0x3266bc0c6acdc3ff, 0x255a4502032e391f, 0x000a0bf25671d2f8},
	{0x0c777839e74404a8, 0x3465277b06749ce9, 0x001a8071ea5a13ae},
	{0xefff7c792b260d10, 0xeba5d5681de0ec69, 0x0014f90010664a4a},
	{0x660d55f291eea000, 0x39e8f75e1c95d8c0, 0x0017d0f8ac0017e2},
	{0x215f2f928a400000, 0x5263fda6f84a475b, 0x0000058f944808d9},
	{0x7f8d8b9680000000, 0xf7d03b0b89d0eb8e, 0x0010c5983fb4169e},
	{0x582dc10000000000, 0x7c4b28b664fccaf7, 0x0029ee1a58978069},
	{0x344a000000000000, 0xd51eee889244c295, 0x002346331a6d53ab},
	{0x6400000000000000, 0x6015999fb2583dc6, 0x001974633381ebbf},
	{0x0000000000000000, 0x4363a20b8322b2e8, 0x001e3fe37049c937},
	{0x0000000000000000, 0xc002f79478bb1000, 0x00112dfd008c1b74},
	{0x0000000000000000, 0x7e7ee47b3aa00000, 0x00209f0afa26505a},
	{0x0000000000000000, 0xf8ed608240000000, 0x0008ebaf6cfebecd},
	{0x0000000000000000, 0x6141468000000000, 0x003b500142d4fa75},
	{0x0000000000000000, 0x6aa1000000000000, 0x0031967fc5a72b41},
	{0x0000000000000000, 0x0a00000000000000, 0x0026ec0c010eddfd},
	{0x0000000000000000, 0x0000000000000000, 0x0003762696afade4},
	{0x0000000000000000, 0x0000000000000000, 0x0028e74cc65de800},
	{0x000000002cd76fe1, 0x0000000000000000, 0x0000000000000000},
	{0x0a70c3c40a64e6c6, 0x0000000000000000, 0x0000000000000000},
	{0xeccc3215dd8f3158, 0x00000000026e4d30, 0x0000000000000000},
	{0x4abc8955e946fe32, 0x0090e40fbeea1d3a, 0x0000000000000000},
	{0x2ecf7b5c68f7e7e5, 0x266d3a36bf5a680a, 0x000000000021bc2b},
	{0x391f3266bc0c6ace, 0xd2f8255a4502032e, 0x0007dac3c24a5671},
	{0x9ce90c777839e745, 0x13ae3465277b0674, 0x00114edee44dea5a},
	{0xec69efff7c792b27, 0x4a4aeba5d5681de0, 0x0012241f37a41066},
	{0xd8c0660d55f291ef, 0x17e239e8f75e1c95, 0x002632fae598ac00},
	{0x475b215f2f928a40, 0x08d95263fda6f84a, 0x00238bf3f5479448},
	{0xeb8e7f8d8b968000, 0x169ef7d03b0b89d0, 0x0010aa7448603fb4},
	{0xcaf7582dc1000000, 0x80697c4b28b664fc, 0x001668e0c5d05897},
	{0xc295344a00000000, 0x53abd51eee889244, 0x003082649ba31a6d},
	{0x3dc6640000000000, 0xebbf6015999fb258, 0x0025f9b5cae73381},
	{0xb2e8000000000000, 0xc9374363a20b8322, 0x0035d4aa5c217049},
	{0x1000000000000000, 0x1b74c002f79478bb, 0x0007c918f05d008c},
	{0x0000000000000000, 0x505a7e7ee47b3aa0, 0x0015a75c010afa26},
	{0x0000000000000000, 0xbecdf8ed60824000, 0x00028e49f8f36cfe},
	{0x0000000000000000, 0xfa75614146800000, 0x0038ad4e5b3942d4},
	{0x0000000000000000, 0x2b416aa100000000, 0x000d55067893c5a7},
	{0x0000000000000000, 0xddfd0a0000000000, 0x002267e7077e010e},
	{0x0000000000000000, 0xade4000000000000, 0x001d566e7cf096af},
	{0x0000000000000000, 0xe800000000000000, 0x00380432f9a8c65d},
	{0x0000000000000000, 0x0000000000000000, 0x00274bc4257ba910},
	{0x0000000000000000, 0x0000000000000000, 0x001ccabbf706a000},
	{0x0000000000002cd8, 0x0000000000000000, 0x0000000000000000},
	{0x00000a70c3c40a65, 0x0000000000000000, 0x0000000000000000},
	{0x4d30eccc3215dd90, 0x000000000000026e, 0x0000000000000000},
	{0x1d3a4abc8955e947, 0x00000090e40fbeea, 0x0000000000000000},
	{0x680a2ecf7b5c68f8, 0xbc2b266d3a36bf5a, 0x0000000000000021},
	{0x032e391f3266bc0d, 0x5671d2f8255a4502, 0x00000007dac3c24a},
	{0x06749ce90c77783a, 0xea5a13ae3465277b, 0x002d942479f2e44d},
	{0x1de0ec69efff7c7a, 0x10664a4aeba5d568, 0x00388d7af40737a4},
	{0x1c95d8c0660d55f3, 0xac0017e239e8f75e, 0x0001ae2ffa60e598},
	{0xf84a475b215f2f93, 0x944808d95263fda6, 0x00168f80c2a5f547},
	{0x89d0eb8e7f8d8b97, 0x3fb4169ef7d03b0b, 0x0026a3dfffc64860},
	{0x64fccaf7582dc100, 0x589780697c4b28b6, 0x002e2a922db0c5d0},
	{0x9244c295344a0000, 0x1a6d53abd51eee88, 0x002928797fd69ba3},
	{0xb2583dc664000000, 0x3381ebbf6015999f, 0x0031f7a18e03cae7},
	{0x8322b2e800000000, 0x7049c9374363a20b, 0x0000e20e560e5c21},
	{0x78bb100000000000, 0x008c1b74c002f794, 0x000357ea75b0f05d},
	{0x3aa0000000000000, 0xfa26505a7e7ee47b, 0x00293261a4bc010a},
	{0x4000000000000000, 0x6cfebecdf8ed6082, 0x002bc5ea8113f8f3},
	{0x0000000000000000, 0x42d4fa7561414680, 0x0004a6739efe5b39},
	{0x0000000000000000, 0xc5a72b416aa10000, 0x003b38d1c6d47893},
	{0x0000000000000000, 0x010eddfd0a000000, 0x003178423e97077e},
	{0x0000000000000000, 0x96afade400000000, 0x00232a0bb7f47cf0},
	{0x0000000000000000, 0xc65de80000000000, 0x0038ec9f860af9a8},
	{0x0000000000000000, 0xa910000000000000, 0x00028e2cbe3e257b},
	{0x0000000000000000, 0xa000000000000000, 0x000e783715edf706},
	{0x0000000000000000, 0x0000000000000000, 0x003767d0e5c77a40},
	{0x0000000000000000, 0x0000000000000000, 0x002e71c9b0f68000},
	{0x000000000a70c3c5, 0x0000000000000000, 0x0000000000000000},
	{0x026e4d30eccc3216, 0x0000000000000000, 0x0000000000000000},
	{0xbeea1d3a4abc8956, 0x000000000090e40f, 0x0000000000000000},
	{0xbf5a680a2ecf7b5d, 0x0021bc2b266d3a36, 0x0000000000000000},
	{0x4502032e391f3267, 0xc24a5671d2f8255a, 0x000000000007dac3},
	{0x277b06749ce90c78, 0xe44dea5a13ae3465, 0x0001d42aea2879f2},
	{0xd5681de0ec69f000, 0x37a410664a4aeba5, 0x00096c9446f4f407},
	{0xf75e1c95d8c0660e, 0xe598ac0017e239e8, 0x00390859beb7fa60},
	{0xfda6f84a475b2160, 0xf547944808d95263, 0x002ad5f21ec4c2a5},
	{0x3b0b89d0eb8e7f8e, 0x48603fb4169ef7d0, 0x002dcfd498f3ffc6},
	{0x28b664fccaf7582e, 0xc5d0589780697c4b, 0x0038cf7b17c82db0},
	{0xee889244c295344a, 0x9ba31a6d53abd51e, 0x002e9b912dfb7fd6},
	{0x999fb2583dc66400, 0xcae73381ebbf6015, 0x003a8e87cfd78e03},
	{0xa20b8322b2e80000, 0x5c217049c9374363, 0x00323010641a560e},
	{0xf79478bb10000000, 0xf05d008c1b74c002, 0x000621c1dbc675b0},
	{0xe47b3aa000000000, 0x010afa26505a7e7e, 0x002e351f2cb3a4bc},
	{0x6082400000000000, 0xf8f36cfebecdf8ed, 0x0029d3962d528113},
	{0x4680000000000000, 0x5b3942d4fa756141, 0x001335a25a3d9efe},
	{0x0000000000000000, 0x7893c5a72b416aa1, 0x000e58e6e37dc6d4},
	{0x0000000000000000, 0x077e010eddfd0a00, 0x001d48dfd27e3e97},
	{0x0000000000000000, 0x7cf096afade40000, 0x001d64c212f7b7f4},
	{0x0000000000000000, 0xf9a8c65de8000000, 0x0039ad2d7905860a},
	{0x0000000000000000, 0x257ba91000000000, 0x0001493b85e8be3e},
	{0x0000000000000000, 0xf706a00000000000, 0x003630926a2315ed},
	{0x0000000000000000, 0x7a40000000000000, 0x00082b44b862e5c7},
	{0x0000000000000000, 0x8000000000000000, 0x001706c13c7bb0f6},
	{0x0000000000000000, 0x0000000000000000, 0x001ccc92dd6b8100},
	{0x0000000000000a71, 0x0000000000000000, 0x0000000000000000},
	{0x0000026e4d30eccd, 0x0000000000000000, 0x0000000000000000},
	{0xe40fbeea1d3a4abd, 0x0000000000000090, 0x0000000000000000},
	{0x3a36bf5a680a2ed0, 0x00000021bc2b266d, 0x0000000000000000},
	{0x255a4502032e3920, 0xdac3c24a5671d2f8, 0x0000000000000007},
	{0x3465277b06749cea, 0x79f2e44dea5a13ae, 0x00000001d42aea28},
	{0xeba5d5681de0ec6a, 0xf40737a410664a4a, 0x0009fdea0d3846f4},
	{0x39e8f75e1c95d8c1, 0xfa60e598ac0017e2, 0x000d1a618b95beb7},
	{0x5263fda6f84a475c, 0xc2a5f547944808d9, 0x0022dd7f49de1ec4},
	{0xf7d03b0b89d0eb8f, 0xffc648603fb4169e, 0x0033b7651f8098f3},
	{0x7c4b28b664fccaf8, 0x2db0c5d058978069, 0x001df101b76b17c8},
	{0xd51eee889244c296, 0x7fd69ba31a6d53ab, 0x0018ef3bf1b72dfb},
	{0x6015999fb2583dc7, 0x8e03cae73381ebbf, 0x002aa65b2a09cfd7},
	{0x4363a20b8322b2e8, 0x560e5c217049c937, 0x000248d57366641a},
	{0xc002f79478bb1000, 0x75b0f05d008c1b74, 0x0017d6fb14a9dbc6},
	{0x7e7ee47b3aa00000, 0xa4bc010afa26505a, 0x00278c5af9ed2cb3},
	{0xf8ed608240000000, 0x8113f8f36cfebecd, 0x003738b5704e2d52},
	{0x6141468000000000, 0x9efe5b3942d4fa75, 0x001233b6f7245a3d},
	{0x6aa1000000000000, 0xc6d47893c5a72b41, 0x000876c72beae37d},
	{0x0a00000000000000, 0x3e97077e010eddfd, 0x0036b0742dfdd27e},
	{0x0000000000000000, 0xb7f47cf096afade4, 0x003b18fc007612f7},
	{0x0000000000000000, 0x860af9a8c65de800, 0x001b7dc3ab617905},
	{0x0000000000000000, 0xbe3e257ba9100000, 0x0016b1d3fcb585e8},
	{0x0000000000000000, 0x15edf706a0000000, 0x002a439e6d846a23},
	{0x0000000000000000, 0xe5c77a4000000000, 0x001ed4866ae8b862},
	{0x0000000000000000, 0xb0f6800000000000, 0x00362f3557f13c7b},
	{0x0000000000000000, 0x8100000000000000, 0x00382acd3deadd6b},
	{0x0000000000000000, 0x0000000000000000, 0x0036af0a4c1d6dca},
	{0x0000000000000000, 0x0000000000000000, 0x0006da18d2256400},
	{0x00000000026e4d31, 0x0000000000000000, 0x0000000000000000},
	{0x0090e40fbeea1d3b, 0x0000000000000000, 0x0000000000000000},
	{0x266d3a36bf5a680b, 0x000000000021bc2b, 0x0000000000000000},
	{0xd2f8255a4502032f, 0x0007dac3c24a5671, 0x0000000000000000},
	{0x13ae3465277b0675, 0xea2879f2e44dea5a, 0x000000000001d42a},
	{0x4a4aeba5d5681de1, 0x46f4f40737a41066, 0x00006d00f7320d38},
	{0x17e239e8f75e1c96, 0xbeb7fa60e598ac00, 0x000ba74f6aa38b95},
	{0x08d95263fda6f84b, 0x1ec4c2a5f5479448, 0x0026140e872d49de},
	{0x169ef7d03b0b89d1, 0x98f3ffc648603fb4, 0x000a8b685cff1f80},
	{0x80697c4b28b664fd, 0x17c82db0c5d05897, 0x003b6684e577b76b},
	{0x53abd51eee889245, 0x2dfb7fd69ba31a6d, 0x001bdfa87ba1f1b7},
	{0xebbf6015999fb259, 0xcfd78e03cae73381, 0x0025b4a068852a09},
	{0xc9374363a20b8323, 0x641a560e5c217049, 0x001f01349ff97366},
	{0x1b74c002f79478bc, 0xdbc675b0f05d008c, 0x003a146cd9b914a9},
	{0x505a7e7ee47b3aa0, 0x2cb3a4bc010afa26, 0x002b17ab9e22f9ed},
	{0xbecdf8ed60824000, 0x2d528113f8f36cfe, 0x000824bf9b2f704e},
	{0xfa75614146800000, 0x5a3d9efe5b3942d4, 0x000b0b910216f724},
	{0x2b416aa100000000, 0xe37dc6d47893c5a7, 0x000558d82bad2bea},
	{0xddfd0a0000000000, 0xd27e3e97077e010e, 0x002851d432622dfd},
	{0xade4000000000000, 0x12f7b7f47cf096af, 0x0016dbf6a27e0076},
	{0xe800000000000000, 0x7905860af9a8c65d, 0x001d564ae9c3ab61},
	{0x0000000000000000, 0x85e8be3e257ba910, 0x002d8ecef4c1fcb5},
	{0x0000000000000000, 0x6a2315edf706a000, 0x002d2a88ec766d84},
	{0x0000000000000000, 0xb862e5c77a400000, 0x001b92d8d8886ae8},
	{0x0000000000000000, 0x3c7bb0f680000000, 0x001fc31f96d957f1},
	{0x0000000000000000, 0xdd6b810000000000, 0x00329aaeff733dea},
	{0x0000000000000000, 0x6dca000000000000, 0x001ad4f34f2c4c1d},
	{0x0000000000000000, 0x6400000000000000, 0x000a50538610d225},
	{0x0000000000000000, 0x0000000000000000, 0x0003ea9a4e5ba8e8},
	{0x0000000000000000, 0x0000000000000000, 0x0015575966d71000},
	{0x000000000000026f, 0x0000000000000000, 0x0000000000000000},
	{0x00000090e40fbeeb, 0x0000000000000000, 0x0000000000000000},
	{0xbc2b266d3a36bf5b, 0x0000000000000021, 0x0000000000000000},
	{0x5671d2f8255a4503, 0x00000007dac3c24a, 0x0000000000000000},
	{0xea5a13ae3465277c, 0xd42aea2879f2e44d, 0x0000000000000001},
	{0x10664a4aeba5d569, 0x0d3846f4f40737a4, 0x000000006d00f732},
	{0xac0017e239e8f75f, 0x8b95beb7fa60e598, 0x0000398e00356aa3},
	{0x944808d95263fda7, 0x49de1ec4c2a5f547, 0x000c6fdffdb2872d},
	{0x3fb4169ef7d03b0c, 0x1f8098f3ffc64860, 0x002991199fee5cff},
	{0x589780697c4b28b7, 0xb76b17c82db0c5d0, 0x00377f8ed31ce577},
	{0x1a6d53abd51eee89, 0xf1b72dfb7fd69ba3, 0x0006ba5b6e5a7ba1},
	{0x3381ebbf601599a0, 0x2a09cfd78e03cae7, 0x0015113417ae6885},
	{0x7049c9374363a20c, 0x7366641a560e5c21, 0x00289b8b2f449ff9},
	{0x008c1b74c002f795, 0x14a9dbc675b0f05d, 0x000ffa5cdfe2d9b9},
	{0xfa26505a7e7ee47c, 0xf9ed2cb3a4bc010a, 0x0034d157a0e59e22},
	{0x6cfebecdf8ed6083, 0x704e2d528113f8f3, 0x003576485f6b9b2f},
	{0x42d4fa7561414680, 0xf7245a3d9efe5b39, 0x00190dd431df0216},
	{0xc5a72b416aa10000, 0x2beae37dc6d47893, 0x0033ec52846c2bad},
	{0x010eddfd0a000000, 0x2dfdd27e3e97077e, 0x00192f7889c23262},
	{0x96afade400000000, 0x007612f7b7f47cf0, 0x002d37082b6aa27e},
	{0xc65de80000000000, 0xab617905860af9a8, 0x0018d3ecee1ee9c3},
	{0xa910000000000000, 0xfcb585e8be3e257b, 0x000732911ca8f4c1},
	{0xa000000000000000, 0x6d846a2315edf706, 0x002756914310ec76},
	{0x0000000000000000, 0x6ae8b862e5c77a40, 0x0003f0bae510d888},
	{0x0000000000000000, 0x57f13c7bb0f68000, 0x0003ec16fd8f96d9},
	{0x0000000000000000, 0x3deadd6b81000000, 0x00216e96230aff73},
	{0x0000000000000000, 0x4c1d6dca00000000, 0x00028f85e8294f2c},
	{0x0000000000000000, 0xd225640000000000, 0x00099e396ea98610},
	{0x0000000000000000, 0xa8e8000000000000, 0x002778664a564e5b},
	{0x0000000000000000, 0x1000000000000000, 0x0014183e5ce566d7},
	{0x0000000000000000, 0x0000000000000000, 0x00356968713552a0},
	{0x0000000000000000, 0x0000000000000000, 0x000c6a48a7724000},
	{0x000000000090e410, 0x0000000000000000, 0x0000000000000000},
	{0x0021bc2b266d3a37, 0x0000000000000000, 0x0000000000000000},
	{0xc24a5671d2f8255b, 0x000000000007dac3, 0x0000000000000000},
	{0xe44dea5a13ae3466, 0x0001d42aea2879f2, 0x0000000000000000},
	{0x37a410664a4aeba6, 0xf7320d3846f4f407, 0x0000000000006d00},
	{0xe598ac0017e239e9, 0x6aa38b95beb7fa60, 0x0000196121900035},
	{0xf547944808d95264, 0x872d49de1ec4c2a5, 0x0021871e0fdffdb2},
	{0x48603fb4169ef7d1, 0x5cff1f8098f3ffc6, 0x003426e780bb9fee},
	{0xc5d0589780697c4c, 0xe577b76b17c82db0, 0x002baf4e3104d31c},
	{0x9ba31a6d53abd51f, 0x7ba1f1b72dfb7fd6, 0x00011f9276d96e5a},
	{0xcae73381ebbf6016, 0x68852a09cfd78e03, 0x00329fe6ce0017ae},
	{0x5c217049c9374364, 0x9ff97366641a560e, 0x0000058383b12f44},
	{0xf05d008c1b74c003, 0xd9b914a9dbc675b0, 0x002941070f72dfe2},
	{0x010afa26505a7e7f, 0x9e22f9ed2cb3a4bc, 0x001abf0e9b4da0e5},
	{0xf8f36cfebecdf8ee, 0x9b2f704e2d528113, 0x00121304f6885f6b},
	{0x5b3942d4fa756142, 0x0216f7245a3d9efe, 0x001fc072ceca31df},
	{0x7893c5a72b416aa1, 0x2bad2beae37dc6d4, 0x002f13bff0fc846c},
	{0x077e010eddfd0a00, 0x32622dfdd27e3e97, 0x003acb33d7a089c2},
	{0x7cf096afade40000, 0xa27e007612f7b7f4, 0x002560d14d222b6a},
	{0xf9a8c65de8000000, 0xe9c3ab617905860a, 0x0007f4aaa7daee1e},
	{0x257ba91000000000, 0xf4c1fcb585e8be3e, 0x0032f9411e5d1ca8},
	{0xf706a00000000000, 0xec766d846a2315ed, 0x0015ade7a6a94310},
	{0x7a40000000000000, 0xd8886ae8b862e5c7, 0x002768cccd98e510},
	{0x8000000000000000, 0x96d957f13c7bb0f6, 0x0023993d52c8fd8f},
	{0x0000000000000000, 0xff733deadd6b8100, 0x002ecbf73838230a},
	{0x0000000000000000, 0x4f2c4c1d6dca0000, 0x000d1204e923e829},
	{0x0000000000000000, 0x8610d22564000000, 0x00085c3783496ea9},
	{0x0000000000000000, 0x4e5ba8e800000000, 0x001118e795324a56},
	{0x0000000000000000, 0x66d7100000000000, 0x000bb58a4aa25ce5},
	{0x0000000000000000, 0x52a0000000000000, 0x0025cd94de007135},
	{0x0000000000000000, 0x4000000000000000, 0x00001a5bbd72a772},
	{0x0000000000000000, 0x0000000000000000, 0x001ab1ea879aa680},
	{0x0000000000000091, 0x0000000000000000, 0x0000000000000000},
	{0x00000021bc2b266e, 0x0000000000000000, 0x0000000000000000},
	{0xdac3c24a5671d2f9, 0x0000000000000007, 0x0000000000000000},
	{0x79f2e44dea5a13af, 0x00000001d42aea28, 0x0000000000000000},
	{0xf40737a410664a4b, 0x6d00f7320d3846f4, 0x0000000000000000},
	{0xfa60e598ac0017e3, 0x00356aa38b95beb7, 0x0000000019612190},
	{0xc2a5f547944808da, 0xfdb2872d49de1ec4, 0x00169d7705280fdf},
	{0xffc648603fb4169f, 0x9fee5cff1f8098f3, 0x000953e1c8bd80bb},
	{0x2db0c5d05897806a, 0xd31ce577b76b17c8, 0x002c1f40364e3104},
	{0x7fd69ba31a6d53ac, 0x6e5a7ba1f1b72dfb, 0x001234934c3c76d9},
	{0x8e03cae73381ebc0, 0x17ae68852a09cfd7, 0x000e13f35102ce00},
	{0x560e5c217049c938, 0x2f449ff97366641a, 0x0000a72c280f83b1},
	{0x75b0f05d008c1b75, 0xdfe2d9b914a9dbc6, 0x00039cbb4c650f72},
	{0xa4bc010afa26505b, 0xa0e59e22f9ed2cb3, 0x001787aa82e49b4d},
	{0x8113f8f36cfebece, 0x5f6b9b2f704e2d52, 0x00353a04b352f688},
	{0x9efe5b3942d4fa76, 0x31df0216f7245a3d, 0x001350fb328ececa},
	{0xc6d47893c5a72b42, 0x846c2bad2beae37d, 0x00214001ae4bf0fc},
	{0x3e97077e010eddfe, 0x89c232622dfdd27e, 0x0011ae751693d7a0},
	{0xb7f47cf096afade4, 0x2b6aa27e007612f7, 0x00226c165e774d22},
	{0x860af9a8c65de800, 0xee1ee9c3ab617905, 0x001bc6e9696ca7da},
	{0xbe3e257ba9100000, 0x1ca8f4c1fcb585e8, 0x00194c622b071e5d},
	{0x15edf706a0000000, 0x4310ec766d846a23, 0x0001a84d5793a6a9},
	{0xe5c77a4000000000, 0xe510d8886ae8b862, 0x002260afc5c8cd98},
	{0xb0f6800000000000, 0xfd8f96d957f13c7b, 0x002ec0cc5cff52c8},
	{0x8100000000000000, 0x230aff733deadd6b, 0x003b727596ab3838},
	{0x0000000000000000, 0xe8294f2c4c1d6dca, 0x0027dd7bdc34e923},
	{0x0000000000000000, 0x6ea98610d2256400, 0x000c51b946118349},
	{0x0000000000000000, 0x4a564e5ba8e80000, 0x000413d8b8459532},
	{0x0000000000000000, 0x5ce566d710000000, 0x001033753f1c4aa2},
	{0x0000000000000000, 0x713552a000000000, 0x0006964ea3f8de00},
	{0x0000000000000000, 0xa772400000000000, 0x0039f1a40587bd72},
	{0x0000000000000000, 0xa680000000000000, 0x001f9abc7f0c879a},
	{0x0000000000000000, 0x0000000000000000, 0x0002ead41a67b061},
	{0x0000000000000000, 0x0000000000000000, 0x0018245846868a00},
	{0x000000000021bc2c, 0x0000000000000000, 0x0000000000000000},
	{0x0007dac3c24a5672, 0x0000000000000000, 0x0000000000000000},
	{0xea2879f2e44dea5b, 0x000000000001d42a, 0x0000000000000000},
	{0x46f4f40737a41067, 0x00006d00f7320d38, 0x0000000000000000},
	{0xbeb7fa60e598ac01, 0x219000356aa38b95, 0x0000000000001961},
	{0x1ec4c2a5f5479449, 0x0fdffdb2872d49de, 0x000005e8bb310528},
	{0x98f3ffc648603fb5, 0x80bb9fee5cff1f80, 0x000b69d403d3c8bd},
	{0x17c82db0c5d05898, 0x3104d31ce577b76b, 0x00314f518b10364e},
	{0x2dfb7fd69ba31a6e, 0x76d96e5a7ba1f1b7, 0x0003c6517b2f4c3c},
	{0xcfd78e03cae73382, 0xce0017ae68852a09, 0x000b032b1deb5102},
	{0x641a560e5c21704a, 0x83b12f449ff97366, 0x0036c9f40f16280f},
	{0xdbc675b0f05d008d, 0x0f72dfe2d9b914a9, 0x000528a1284b4c65},
	{0x2cb3a4bc010afa27, 0x9b4da0e59e22f9ed, 0x00118822a9a282e4},
	{0x2d528113f8f36cff, 0xf6885f6b9b2f704e, 0x0025d66da898b352},
	{0x5a3d9efe5b3942d5, 0xceca31df0216f724, 0x00238da87c39328e},
	{0xe37dc6d47893c5a8, 0xf0fc846c2bad2bea, 0x000d513c7575ae4b},
	{0xd27e3e97077e010f, 0xd7a089c232622dfd, 0x001b665335c11693},
	{0x12f7b7f47cf096b0, 0x4d222b6aa27e0076, 0x002cf4f403725e77},
	{0x7905860af9a8c65e, 0xa7daee1ee9c3ab61, 0x001aa0ec9115696c},
	{0x85e8be3e257ba910, 0x1e5d1ca8f4c1fcb5, 0x0004fc3e5b3c2b07},
	{0x6a2315edf706a000, 0xa6a94310ec766d84, 0x000e024c003b5793},
	{0xb862e5c77a400000, 0xcd98e510d8886ae8, 0x000dd1108955c5c8},
	{0x3c7bb0f680000000, 0x52c8fd8f96d957f1, 0x0013f871f03e5cff},
	{0xdd6b810000000000, 0x3838230aff733dea, 0x000e8523ff0d96ab},
	{0x6dca000000000000, 0xe923e8294f2c4c1d, 0x000329f0d1d7dc34},
	{0x6400000000000000, 0x83496ea98610d225, 0x00324244fd514611},
	{0x0000000000000000, 0x95324a564e5ba8e8, 0x0012ec4a5114b845},
	{0x0000000000000000, 0x4aa25ce566d71000, 0x0004d2ff3ca53f1c},
	{0x0000000000000000, 0xde00713552a00000, 0x00267975e004a3f8},
	{0x0000000000000000, 0xbd72a77240000000, 0x00011498a8420587},
	{0x0000000000000000, 0x879aa68000000000, 0x000f5f31b4ae7f0c},
	{0x0000000000000000, 0xb061000000000000, 0x0028a0ca010a1a67},
	{0x0000000000000000, 0x8a00000000000000, 0x00025a31c0dc4686},
	{0x0000000000000000, 0x0000000000000000, 0x003349713e632ce4},
	{0x0000000000000000, 0x0000000000000000, 0x0017174fce93e800},
	{0x0000000000000022, 0x0000000000000000, 0x0000000000000000},
	{0x00000007dac3c24b, 0x0000000000000000, 0x0000000000000000},
	{0xd42aea2879f2e44e, 0x0000000000000001, 0x0000000000000000},
	{0x0d3846f4f40737a5, 0x000000006d00f732, 0x0000000000000000},
	{0x8b95beb7fa60e599, 0x1961219000356aa3, 0x0000000000000000},
	{0x49de1ec4c2a5f548, 0x05280fdffdb2872d, 0x0000000005e8bb31},
	{0x1f8098f3ffc64861, 0xc8bd80bb9fee5cff, 0x00362fdc8b6203d3},
	{0xb76b17c82db0c5d1, 0x364e3104d31ce577, 0x0016d22573af8b10},
	{0xf1b72dfb7fd69ba4, 0x4c3c76d96e5a7ba1, 0x0028df30e7ff7b2f},
	{0x2a09cfd78e03cae8, 0x5102ce0017ae6885, 0x003b7bdd98391deb},
	{0x7366641a560e5c22, 0x280f83b12f449ff9, 0x000d4c6e4cd60f16},
	{0x14a9dbc675b0f05e, 0x4c650f72dfe2d9b9, 0x0031d6e81677284b},
	{0xf9ed2cb3a4bc010b, 0x82e49b4da0e59e22, 0x001bbe559db2a9a2},
	{0x704e2d528113f8f4, 0xb352f6885f6b9b2f, 0x0029991f79c7a898},
	{0xf7245a3d9efe5b3a, 0x328ececa31df0216, 0x002e7c9428387c39},
	{0x2beae37dc6d47894, 0xae4bf0fc846c2bad, 0x000d26c87b147575},
	{0x2dfdd27e3e97077f, 0x1693d7a089c23262, 0x0004c370eca535c1},
	{0x007612f7b7f47cf1, 0x5e774d222b6aa27e, 0x0026774832c60372},
	{0xab617905860af9a9, 0x696ca7daee1ee9c3, 0x002e1a85ad4a9115},
	{0xfcb585e8be3e257c, 0x2b071e5d1ca8f4c1, 0x00115c860ca85b3c},
	{0x6d846a2315edf707, 0x5793a6a94310ec76, 0x002732d2981a003b},
	{0x6ae8b862e5c77a40, 0xc5c8cd98e510d888, 0x00060dc655108955},
	{0x57f13c7bb0f68000, 0x5cff52c8fd8f96d9, 0x0003d9a66e8bf03e},
	{0x3deadd6b81000000, 0x96ab3838230aff73, 0x002094fb5083ff0d},
	{0x4c1d6dca00000000, 0xdc34e923e8294f2c, 0x001ebb97b726d1d7},
	{0xd225640000000000, 0x461183496ea98610, 0x000909d59d2efd51},
	{0xa8e8000000000000, 0xb84595324a564e5b, 0x000af0cb31ec5114},
	{0x1000000000000000, 0x3f1c4aa25ce566d7, 0x0037059304e93ca5},
	{0x0000000000000000, 0xa3f8de00713552a0, 0x00364e009acde004},
	{0x0000000000000000, 0x0587bd72a7724000, 0x002fef1c4758a842},
	{0x0000000000000000, 0x7f0c879aa6800000, 0x0014a46263c1b4ae},
	{0x0000000000000000, 0x1a67b06100000000, 0x002d19c3c0d2010a},
	{0x0000000000000000, 0x46868a0000000000, 0x0030e537a8fbc0dc},
	{0x0000000000000000, 0x2ce4000000000000, 0x003a9dab6ef13e63},
	{0x0000000000000000, 0xe800000000000000, 0x00382b3ebe3bce93},
	{0x0000000000000000, 0x0000000000000000, 0x000decc58c724510},
	{0x0000000000000000, 0x0000000000000000, 0x001a9b02661ea000},
	{0x000000000007dac4, 0x0000000000000000, 0x0000000000000000},
	{0x0001d42aea2879f3, 0x0000000000000000, 0x0000000000000000},
	{0xf7320d3846f4f408, 0x0000000000006d00, 0x0000000000000000},
	{0x6aa38b95beb7fa61, 0x0000196121900035, 0x0000000000000000},
	{0x872d49de1ec4c2a6, 0xbb3105280fdffdb2, 0x00000000000005e8},
	{0x5cff1f8098f3ffc7, 0x03d3c8bd80bb9fee, 0x0000016035ce8b62},
	{0xe577b76b17c82db1, 0x8b10364e3104d31c, 0x0030170269d373af},
	{0x7ba1f1b72dfb7fd7, 0x7b2f4c3c76d96e5a, 0x00313b83e5eee7ff},
	{0x68852a09cfd78e04, 0x1deb5102ce0017ae, 0x00379febf4239839},
	{0x9ff97366641a560f, 0x0f16280f83b12f44, 0x0008499ad25e4cd6},
	{0xd9b914a9dbc675b1, 0x284b4c650f72dfe2, 0x0015f4b9f6e01677},
	{0x9e22f9ed2cb3a4bd, 0xa9a282e49b4da0e5, 0x00342cabcbb19db2},
	{0x9b2f704e2d528114, 0xa898b352f6885f6b, 0x00295abd310179c7},
	{0x0216f7245a3d9eff, 0x7c39328ececa31df, 0x000057f5700e2838},
	{0x2bad2beae37dc6d5, 0x7575ae4bf0fc846c, 0x00034bd462587b14},
	{0x32622dfdd27e3e98, 0x35c11693d7a089c2, 0x001499dd927eeca5},
	{0xa27e007612f7b7f5, 0x03725e774d222b6a, 0x001d8d48958032c6},
	{0xe9c3ab617905860b, 0x9115696ca7daee1e, 0x001dd93755f9ad4a},
	{0xf4c1fcb585e8be3f, 0x5b3c2b071e5d1ca8, 0x003a21e771080ca8},
	{0xec766d846a2315ee, 0x003b5793a6a94310, 0x0001dfc8c44a981a},
	{0xd8886ae8b862e5c8, 0x8955c5c8cd98e510, 0x00115e2859b65510},
	{0x96d957f13c7bb0f7, 0xf03e5cff52c8fd8f, 0x002a73d9dab86e8b},
	{0xff733deadd6b8100, 0xff0d96ab3838230a, 0x002af0fe47c75083},
	{0x4f2c4c1d6dca0000, 0xd1d7dc34e923e829, 0x002e681220b7b726},
	{0x8610d22564000000, 0xfd51461183496ea9, 0x002ac64b163b9d2e},
	{0x4e5ba8e800000000, 0x5114b84595324a56, 0x000de1456cad31ec},
	{0x66d7100000000000, 0x3ca53f1c4aa25ce5, 0x0028533a283d04e9},
	{0x52a0000000000000, 0xe004a3f8de007135, 0x000e3506db289acd},
	{0x4000000000000000, 0xa8420587bd72a772, 0x0009743a9ca04758},
	{0x0000000000000000, 0xb4ae7f0c879aa680, 0x0025515ad26863c1},
	{0x0000000000000000, 0x010a1a67b0610000, 0x00184e1c05e1c0d2},
	{0x0000000000000000, 0xc0dc46868a000000, 0x00348ff086b7a8fb},
	{0x0000000000000000, 0x3e632ce400000000, 0x002ac2fe983b6ef1},
	{0x0000000000000000, 0xce93e80000000000, 0x000dd6813c0abe3b},
	{0x0000000000000000, 0x4510000000000000, 0x00028056b2b18c72},
	{0x0000000000000000, 0xa000000000000000, 0x002956b8eb7a661e},
	{0x0000000000000000, 0x0000000000000000, 0x001c7f8b11e06a40},
	{0x0000000000000000, 0x0000000000000000, 0x0034402dbe568000},
	{0x0000000000000008, 0x0000000000000000, 0x0000000000000000},
	{0x00000001d42aea29, 0x0000000000000000, 0x0000000000000000},
	{0x6d00f7320d3846f5, 0x0000000000000000, 0x0000000000000000},
	{0x00356aa38b95beb8, 0x0000000019612190, 0x0000000000000000},
	{0xfdb2872d49de1ec5, 0x05e8bb3105280fdf, 0x0000000000000000},
	{0x9fee5cff1f8098f4, 0x8b6203d3c8bd80bb, 0x00000000016035ce},
	{0xd31ce577b76b17c9, 0x73af8b10364e3104, 0x00166692e2d469d3},
	{0x6e5a7ba1f1b72dfc, 0xe7ff7b2f4c3c76d9, 0x003174d3005de5ee},
	{0x17ae68852a09cfd8, 0x98391deb5102ce00, 0x0015dcc4789df423},
	{0x2f449ff97366641b, 0x4cd60f16280f83b1, 0x0024c6c5b422d25e},
	{0xdfe2d9b914a9dbc7, 0x1677284b4c650f72, 0x00081b89c26df6e0},
	{0xa0e59e22f9ed2cb4, 0x9db2a9a282e49b4d, 0x00199a62ecc7cbb1},
	{0x5f6b9b2f704e2d53, 0x79c7a898b352f688, 0x002e84c01eeb3101},
	{0x31df0216f7245a3e, 0x28387c39328ececa, 0x0036c280669f700e},
	{0x846c2bad2beae37e, 0x7b147575ae4bf0fc, 0x00251f3a7a346258},
	{0x89c232622dfdd27f, 0xeca535c11693d7a0, 0x000c3256e331927e},
	{0x2b6aa27e007612f8, 0x32c603725e774d22, 0x000b8abc7e7c9580},
	{0xee1ee9c3ab617906, 0xad4a9115696ca7da, 0x001d01c8c8c955f9},
	{0x1ca8f4c1fcb585e9, 0x0ca85b3c2b071e5d, 0x002ee08d20f97108},
	{0x4310ec766d846a24, 0x981a003b5793a6a9, 0x003a13dfacf2c44a},
	{0xe510d8886ae8b863, 0x55108955c5c8cd98, 0x00388606d4d059b6},
	{0xfd8f96d957f13c7c, 0x6e8bf03e5cff52c8, 0x003082a76413dab8},
	{0x230aff733deadd6c, 0x5083ff0d96ab3838, 0x00049f69bf0247c7},
	{0xe8294f2c4c1d6dca, 0xb726d1d7dc34e923, 0x000087ebea1820b7},
	{0x6ea98610d2256400, 0x9d2efd5146118349, 0x00059e210f8b163b},
	{0x4a564e5ba8e80000, 0x31ec5114b8459532, 0x00206238dca16cad},
	{0x5ce566d710000000, 0x04e93ca53f1c4aa2, 0x002595a6aa72283d},
	{0x713552a000000000, 0x9acde004a3f8de00, 0x001a944c5896db28},
	{0xa772400000000000, 0x4758a8420587bd72, 0x00231fb93b089ca0},
	{0xa680000000000000, 0x63c1b4ae7f0c879a, 0x0002014df472d268},
	{0x0000000000000000, 0xc0d2010a1a67b061, 0x001abbeb3bd005e1},
	{0x0000000000000000, 0xa8fbc0dc46868a00, 0x00306f22b5e286b7},
	{0x0000000000000000, 0x6ef13e632ce40000, 0x0034be041cba983b},
	{0x0000000000000000, 0xbe3bce93e8000000, 0x002b71e882713c0a},
	{0x0000000000000000, 0x8c72451000000000, 0x001a5d4df1aeb2b1},
	{0x0000000000000000, 0x661ea00000000000, 0x0028acd0432ceb7a},
	{0x0000000000000000, 0x6a40000000000000, 0x000a756e4ef911e0},
	{0x0000000000000000, 0x8000000000000000, 0x0039fdb80197be56},
	{0x0000000000000000, 0x0000000000000000, 0x0023549e2bb94100},
	{0x000000000001d42b, 0x0000000000000000, 0x0000000000000000},
	{0x00006d00f7320d39, 0x0000000000000000, 0x0000000000000000},
	{0x219000356aa38b96, 0x0000000000001961, 0x0000000000000000},
	{0x0fdffdb2872d49df, 0x000005e8bb310528, 0x0000000000000000},
	{0x80bb9fee5cff1f81, 0x35ce8b6203d3c8bd, 0x0000000000000160},
	{0x3104d31ce577b76c, 0x69d373af8b10364e, 0x00000052015ce2d4},
	{0x76d96e5a7ba1f1b8, 0xe5eee7ff7b2f4c3c, 0x0015a070b327005d},
	{0xce0017ae68852a0a, 0xf42398391deb5102, 0x000914aaa2c4789d},
	{0x83b12f449ff97367, 0xd25e4cd60f16280f, 0x002dbe97fd75b422},
	{0x0f72dfe2d9b914aa, 0xf6e01677284b4c65, 0x001b67af4391c26d},
	{0x9b4da0e59e22f9ee, 0xcbb19db2a9a282e4, 0x0021eff15176ecc7},
	{0xf6885f6b9b2f704f, 0x310179c7a898b352, 0x001bb07a52f81eeb},
	{0xceca31df0216f725, 0x700e28387c39328e, 0x0039c526962c669f},
	{0xf0fc846c2bad2beb, 0x62587b147575ae4b, 0x000a567f83b67a34},
	{0xd7a089c232622dfe, 0x927eeca535c11693, 0x002a7c7f929ae331},
	{0x4d222b6aa27e0077, 0x958032c603725e77, 0x002410034fda7e7c},
	{0xa7daee1ee9c3ab62, 0x55f9ad4a9115696c, 0x0032df433534c8c9},
	{0x1e5d1ca8f4c1fcb6, 0x71080ca85b3c2b07, 0x000c4a30d65d20f9},
	{0xa6a94310ec766d85, 0xc44a981a003b5793, 0x0015aee8cf1facf2},
	{0xcd98e510d8886ae9, 0x59b655108955c5c8, 0x00076002fbbed4d0},
	{0x52c8fd8f96d957f2, 0xdab86e8bf03e5cff, 0x002c6e6e9def6413},
	{0x3838230aff733deb, 0x47c75083ff0d96ab, 0x0037bccfac51bf02},
	{0xe923e8294f2c4c1e, 0x20b7b726d1d7dc34, 0x00130872eea1ea18},
	{0x83496ea98610d226, 0x163b9d2efd514611, 0x0025b2da24c50f8b},
	{0x95324a564e5ba8e8, 0x6cad31ec5114b845, 0x002de1bbe60edca1},
	{0x4aa25ce566d71000, 0x283d04e93ca53f1c, 0x000375d5a73eaa72},
	{0xde00713552a00000, 0xdb289acde004a3f8, 0x000e972c4a705896},
	{0xbd72a77240000000, 0x9ca04758a8420587, 0x001a2858b5293b08},
	{0x879aa68000000000, 0xd26863c1b4ae7f0c, 0x0009998907dbf472},
	{0xb061000000000000, 0x05e1c0d2010a1a67, 0x0033365512733bd0},
	{0x8a00000000000000, 0x86b7a8fbc0dc4686, 0x001ad475d9b0b5e2},
	{0x0000000000000000, 0x983b6ef13e632ce4, 0x002924c40ed61cba},
	{0x0000000000000000, 0x3c0abe3bce93e800, 0x0031da153c008271},
	{0x0000000000000000, 0xb2b18c7245100000, 0x00001e5ef7e1f1ae},
	{0x0000000000000000, 0xeb7a661ea0000000, 0x00349b50eefa432c},
	{0x0000000000000000, 0x11e06a4000000000, 0x003a44cd3c4c4ef9},
	{0x0000000000000000, 0xbe56800000000000, 0x0011c4571f440197},
	{0x0000000000000000, 0x4100000000000000, 0x000fd57c97682bb9},
	{0x0000000000000000, 0x0000000000000000, 0x0018411031ec474a},
	{0x0000000000000000, 0x0000000000000000, 0x0037034b60c46400},
	{0x0000000000000002, 0x0000000000000000, 0x0000000000000000},
	{0x000000006d00f733, 0x0000000000000000, 0x0000000000000000},
	{0x1961219000356aa4, 0x0000000000000000, 0x0000000000000000},
	{0x05280fdffdb2872e, 0x0000000005e8bb31, 0x0000000000000000},
	{0xc8bd80bb9fee5d00, 0x016035ce8b6203d3, 0x0000000000000000},
	{0x364e3104d31ce578, 0xe2d469d373af8b10, 0x000000000052015c},
	{0x4c3c76d96e5a7ba2, 0x005de5eee7ff7b2f, 0x001317e5ef3ab327},
	{0x5102ce0017ae6886, 0x789df42398391deb, 0x000daac813e8a2c4},
	{0x280f83b12f449ffa, 0xb422d25e4cd60f16, 0x00362a2cc26bfd75},
	{0x4c650f72dfe2d9ba, 0xc26df6e01677284b, 0x001924b5cf514391},
	{0x82e49b4da0e59e23, 0xecc7cbb19db2a9a2, 0x0012ebb55ccf5176},
	{0xb352f6885f6b9b30, 0x1eeb310179c7a898, 0x00304521006452f8},
	{0x328ececa31df0217, 0x669f700e28387c39, 0x00175bc841da962c},
	{0xae4bf0fc846c2bae, 0x7a3462587b147575, 0x0032e4c70cdb83b6},
	{0x1693d7a089c23263, 0xe331927eeca535c1, 0x00331c157fdd929a},
	{0x5e774d222b6aa27f, 0x7e7c958032c60372, 0x003396c2b9374fda},
	{0x696ca7daee1ee9c4, 0xc8c955f9ad4a9115, 0x000ce0d909993534},
	{0x2b071e5d1ca8f4c2, 0x20f971080ca85b3c, 0x0023abe61002d65d},
	{0x5793a6a94310ec77, 0xacf2c44a981a003b, 0x0000a91ea7c4cf1f},
	{0xc5c8cd98e510d889, 0xd4d059b655108955, 0x002dd2bc3158fbbe},
	{0x5cff52c8fd8f96da, 0x6413dab86e8bf03e, 0x0014b7d2a27c9def},
	{0x96ab3838230aff74, 0xbf0247c75083ff0d, 0x001d03bf82b1ac51},
	{0xdc34e923e8294f2d, 0xea1820b7b726d1d7, 0x00295e24b22aeea1},
	{0x461183496ea98611, 0x0f8b163b9d2efd51, 0x0009fef4bea624c5},
	{0xb84595324a564e5c, 0xdca16cad31ec5114, 0x0026aeeea223e60e},
	{0x3f1c4aa25ce566d8, 0xaa72283d04e93ca5, 0x00085bba2551a73e},
	{0xa3f8de00713552a0, 0x5896db289acde004, 0x001302ea7af24a70},
	{0x0587bd72a7724000, 0x3b089ca04758a842, 0x003869a7dabcb529},
	{0x7f0c879aa6800000, 0xf472d26863c1b4ae, 0x002befda625b07db},
	{0x1a67b06100000000, 0x3bd005e1c0d2010a, 0x001531da3fdb1273},
	{0x46868a0000000000, 0xb5e286b7a8fbc0dc, 0x003301b684a9d9b0},
	{0x2ce4000000000000, 0x1cba983b6ef13e63, 0x00278bdeb3fe0ed6},
	{0xe800000000000000, 0x82713c0abe3bce93, 0x003b2708bd213c00},
	{0x0000000000000000, 0xf1aeb2b18c724510, 0x0007bcec6fb6f7e1},
	{0x0000000000000000, 0x432ceb7a661ea000, 0x002a99c29036eefa},
	{0x0000000000000000, 0x4ef911e06a400000, 0x000cca4ac8993c4c},
	{0x0000000000000000, 0x0197be5680000000, 0x0023ad8cc5af1f44},
	{0x0000000000000000, 0x2bb9410000000000, 0x0028c617a9f29768},
	{0x0000000000000000, 0x474a000000000000, 0x00387b93823631ec},
	{0x0000000000000000, 0x6400000000000000, 0x000c9e463ff560c4},
	{0x0000000000000000, 0x0000000000000000, 0x003921ab178b1ee8},
	{0x0000000000000000, 0x0000000000000000, 0x0020643dd5f31000},
	{0x0000000000006d01, 0x0000000000000000, 0x0000000000000000},
	{0x0000196121900036, 0x0000000000000000, 0x0000000000000000},
	{0xbb3105280fdffdb3, 0x00000000000005e8, 0x0000000000000000},
	{0x03d3c8bd80bb9fef, 0x0000016035ce8b62, 0x0000000000000000},
	{0x8b10364e3104d31d, 0x015ce2d469d373af, 0x0000000000000052},
	{0x7b2f4c3c76d96e5b, 0xb327005de5eee7ff, 0x0000001317e5ef3a},
	{0x1deb5102ce0017af, 0xa2c4789df4239839, 0x00358929df5e13e8},
	{0x0f16280f83b12f45, 0xfd75b422d25e4cd6, 0x0015e778d32ac26b},
	{0x284b4c650f72dfe3, 0x4391c26df6e01677, 0x0009f4a995c9cf51},
	{0xa9a282e49b4da0e6, 0x5176ecc7cbb19db2, 0x002efccdaf0b5ccf},
	{0xa898b352f6885f6c, 0x52f81eeb310179c7, 0x0002a54293b90064},
	{0x7c39328ececa31e0, 0x962c669f700e2838, 0x002b12f355c841da},
	{0x7575ae4bf0fc846d, 0x83b67a3462587b14, 0x002ea04302110cdb},
	{0x35c11693d7a089c3, 0x929ae331927eeca5, 0x0003f845c78d7fdd},
	{0x03725e774d222b6b, 0x4fda7e7c958032c6, 0x0020f206a2f8b937},
	{0x9115696ca7daee1f, 0x3534c8c955f9ad4a, 0x0039e9136cd30999},
	{0x5b3c2b071e5d1ca9, 0xd65d20f971080ca8, 0x003122d09b001002},
	{0x003b5793a6a94311, 0xcf1facf2c44a981a, 0x000003ba55bea7c4},
	{0x8955c5c8cd98e511, 0xfbbed4d059b65510, 0x002c63f1b8823158},
	{0xf03e5cff52c8fd90, 0x9def6413dab86e8b, 0x001e5017ec7ca27c},
	{0xff0d96ab3838230b, 0xac51bf0247c75083, 0x001d04cecf9382b1},
	{0xd1d7dc34e923e82a, 0xeea1ea1820b7b726, 0x0022584ff6b8b22a},
	{0xfd51461183496eaa, 0x24c50f8b163b9d2e, 0x002b00bccf68bea6},
	{0x5114b84595324a57, 0xe60edca16cad31ec, 0x00186345a0daa223},
	{0x3ca53f1c4aa25ce6, 0xa73eaa72283d04e9, 0x0032e790538e2551},
	{0xe004a3f8de007136, 0x4a705896db289acd, 0x0021188c6e1c7af2},
	{0xa8420587bd72a773, 0xb5293b089ca04758, 0x0006a18e45ebdabc},
	{0xb4ae7f0c879aa680, 0x07dbf472d26863c1, 0x0036ea052dde625b},
	{0x010a1a67b0610000, 0x12733bd005e1c0d2, 0x0033c7219f2e3fdb},
	{0xc0dc46868a000000, 0xd9b0b5e286b7a8fb, 0x000ac4ae656c84a9},
	{0x3e632ce400000000, 0x0ed61cba983b6ef1, 0x001944309406b3fe},
	{0xce93e80000000000, 0x3c0082713c0abe3b, 0x00018f891e46bd21},
	{0x4510000000000000, 0xf7e1f1aeb2b18c72, 0x0010785c400e6fb6},
	{0xa000000000000000, 0xeefa432ceb7a661e, 0x00035c79c3589036},
	{0x0000000000000000, 0x3c4c4ef911e06a40, 0x00149ec94beac899},
	{0x0000000000000000, 0x1f440197be568000, 0x0036aa313f5cc5af},
	{0x0000000000000000, 0x97682bb941000000, 0x001599a77b89a9f2},
	{0x0000000000000000, 0x31ec474a00000000, 0x00200d67c4ed8236},
	{0x0000000000000000, 0x60c4640000000000, 0x00374c9e3ada3ff5},
	{0x0000000000000000, 0x1ee8000000000000, 0x0032d0b43d61178b},
	{0x0000000000000000, 0x1000000000000000, 0x00169b21d663d5f3},
	{0x0000000000000000, 0x0000000000000000, 0x00173eac7fb96aa0},
	{0x0000000000000000, 0x0000000000000000, 0x002b2baf52624000},
	{0x0000000019612191, 0x0000000000000000, 0x0000000000000000},
	{0x05e8bb3105280fe0, 0x0000000000000000, 0x0000000000000000},
	{0x8b6203d3c8bd80bc, 0x00000000016035ce, 0x0000000000000000},
	{0x73af8b10364e3105, 0x0052015ce2d469d3, 0x0000000000000000},
	{0xe7ff7b2f4c3c76da, 0xef3ab327005de5ee, 0x00000000001317e5},
	{0x98391deb5102ce01, 0x13e8a2c4789df423, 0x0004720d6f4fdf5e},
	{0x4cd60f16280f83b2, 0xc26bfd75b422d25e, 0x001298c6136ed32a},
	{0x1677284b4c650f73, 0xcf514391c26df6e0, 0x0019cdad552795c9},
	{0x9db2a9a282e49b4e, 0x5ccf5176ecc7cbb1, 0x00093774da5faf0b},
	{0x79c7a898b352f689, 0x006452f81eeb3101, 0x001647326b5893b9},
	{0x28387c39328ececb, 0x41da962c669f700e, 0x00149f9a64f155c8},
	{0x7b147575ae4bf0fd, 0x0cdb83b67a346258, 0x003830b12f550211},
	{0xeca535c11693d7a1, 0x7fdd929ae331927e, 0x0013cae03fd9c78d},
	{0x32c603725e774d23, 0xb9374fda7e7c9580, 0x0032b4ab7f0ca2f8},
	{0xad4a9115696ca7db, 0x09993534c8c955f9, 0x0002f13354e76cd3},
	{0x0ca85b3c2b071e5e, 0x1002d65d20f97108, 0x0035e202b6089b00},
	{0x981a003b5793a6aa, 0xa7c4cf1facf2c44a, 0x000200ed0c0855be},
	{0x55108955c5c8cd99, 0x3158fbbed4d059b6, 0x0001f0cd1903b882},
	{0x6e8bf03e5cff52c9, 0xa27c9def6413dab8, 0x0000ddc5ef47ec7c},
	{0x5083ff0d96ab3839, 0x82b1ac51bf0247c7, 0x0010befdbd06cf93},
	{0xb726d1d7dc34e924, 0xb22aeea1ea1820b7, 0x000195f53da5f6b8},
	{0x9d2efd514611834a, 0xbea624c50f8b163b, 0x0026a435f0d8cf68},
	{0x31ec5114b8459533, 0xa223e60edca16cad, 0x00327ae4fc9ba0da},
	{0x04e93ca53f1c4aa3, 0x2551a73eaa72283d, 0x00243c2bf3d0538e},
	{0x9acde004a3f8de01, 0x7af24a705896db28, 0x00308138680a6e1c},
	{0x4758a8420587bd73, 0xdabcb5293b089ca0, 0x00026daf085a45eb},
	{0x63c1b4ae7f0c879b, 0x625b07dbf472d268, 0x001504b2a6772dde},
	{0xc0d2010a1a67b061, 0x3fdb12733bd005e1, 0x001bbfa1e2a39f2e},
	{0xa8fbc0dc46868a00, 0x84a9d9b0b5e286b7, 0x0026189e8624656c},
	{0x6ef13e632ce40000, 0xb3fe0ed61cba983b, 0x00087961bde29406},
	{0xbe3bce93e8000000, 0xbd213c0082713c0a, 0x0034c11d60511e46},
	{0x8c72451000000000, 0x6fb6f7e1f1aeb2b1, 0x0012e3068608400e},
	{0x661ea00000000000, 0x9036eefa432ceb7a, 0x0001ebc05ef9c358},
	{0x6a40000000000000, 0xc8993c4c4ef911e0, 0x003a270a00a74bea},
	{0x8000000000000000, 0xc5af1f440197be56, 0x0026f3a6c95f3f5c},
	{0x0000000000000000, 0xa9f297682bb94100, 0x00162d31a75d7b89},
	{0x0000000000000000, 0x823631ec474a0000, 0x0015c3fece75c4ed},
	{0x0000000000000000, 0x3ff560c464000000, 0x001b6b9821463ada},
	{0x0000000000000000, 0x178b1ee800000000, 0x00105a071e783d61},
	{0x0000000000000000, 0xd5f3100000000000, 0x001bfed92d43d663},
	{0x0000000000000000, 0x6aa0000000000000, 0x000fcb6d81887fb9},
	{0x0000000000000000, 0x4000000000000000, 0x001fc7f845e55262},
	{0x0000000000000000, 0x0000000000000000, 0x003564a526dc0680},
	{0x0000000000001962, 0x0000000000000000, 0x0000000000000000},
	{0x000005e8bb310529, 0x0000000000000000, 0x0000000000000000},
	{0x35ce8b6203d3c8be, 0x0000000000000160, 0x0000000000000000},
	{0x69d373af8b10364f, 0x00000052015ce2d4, 0x0000000000000000},
	{0xe5eee7ff7b2f4c3d, 0x17e5ef3ab327005d, 0x0000000000000013},
	{0xf42398391deb5103, 0xdf5e13e8a2c4789d, 0x00000004720d6f4f},
	{0xd25e4cd60f162810, 0xd32ac26bfd75b422, 0x000320c6f85c136e},
	{0xf6e01677284b4c66, 0x95c9cf514391c26d, 0x00157026e2ab5527},
	{0xcbb19db2a9a282e5, 0xaf0b5ccf5176ecc7, 0x0027e4388a86da5f},
	{0x310179c7a898b353, 0x93b9006452f81eeb, 0x001f65ddd3366b58},
	{0x700e28387c39328f, 0x55c841da962c669f, 0x000caba4ee0864f1},
	{0x62587b147575ae4c, 0x02110cdb83b67a34, 0x0001f456f7992f55},
	{0x927eeca535c11694, 0xc78d7fdd929ae331, 0x0023aa87eff63fd9},
	{0x958032c603725e78, 0xa2f8b9374fda7e7c, 0x0039559be8617f0c},
	{0x55f9ad4a9115696d, 0x6cd309993534c8c9, 0x0016b33b456954e7},
	{0x71080ca85b3c2b08, 0x9b001002d65d20f9, 0x00188641864ab608},
	{0xc44a981a003b5794, 0x55bea7c4cf1facf2, 0x0011652070890c08},
	{0x59b655108955c5c9, 0xb8823158fbbed4d0, 0x001fe8a34c451903},
	{0xdab86e8bf03e5d00, 0xec7ca27c9def6413, 0x0010168b6d7fef47},
	{0x47c75083ff0d96ac, 0xcf9382b1ac51bf02, 0x001dc9807793bd06},
	{0x20b7b726d1d7dc35, 0xf6b8b22aeea1ea18, 0x002265e4db173da5},
	{0x163b9d2efd514612, 0xcf68bea624c50f8b, 0x00056942ac57f0d8},
	{0x6cad31ec5114b846, 0xa0daa223e60edca1, 0x001479ae3e44fc9b},
	{0x283d04e93ca53f1d, 0x538e2551a73eaa72, 0x00100fee4303f3d0},
	{0xdb289acde004a3f9, 0x6e1c7af24a705896, 0x0000eb94ccf6680a},
	{0x9ca04758a8420588, 0x45ebdabcb5293b08, 0x00395ef76bbf085a},
	{0xd26863c1b4ae7f0d, 0x2dde625b07dbf472, 0x002c7a6e9102a677},
	{0x05e1c0d2010a1a68, 0x9f2e3fdb12733bd0, 0x00009df7b29de2a3},
	{0x86b7a8fbc0dc4687, 0x656c84a9d9b0b5e2, 0x0024c2b2a0f28624},
	{0x983b6ef13e632ce4, 0x9406b3fe0ed61cba, 0x0038778e731dbde2},
	{0x3c0abe3bce93e800, 0x1e46bd213c008271, 0x0006ecbeea3f6051},
	{0xb2b18c7245100000, 0x400e6fb6f7e1f1ae, 0x000ec184a4c68608},
	{0xeb7a661ea0000000, 0xc3589036eefa432c, 0x002e38ed2d7c5ef9},
	{0x11e06a4000000000, 0x4beac8993c4c4ef9, 0x001cf516d53600a7},
	{0xbe56800000000000, 0x3f5cc5af1f440197, 0x000c92cd8fa6c95f},
	{0x4100000000000000, 0x7b89a9f297682bb9, 0x0026d541b1cba75d},
	{0x0000000000000000, 0xc4ed823631ec474a, 0x002f6ab5ebc4ce75},
	{0x0000000000000000, 0x3ada3ff560c46400, 0x002dd294a2242146},
	{0x0000000000000000, 0x3d61178b1ee80000, 0x00086983b6111e78},
	{0x0000000000000000, 0xd663d5f310000000, 0x0003fc5f8c852d43},
	{0x0000000000000000, 0x7fb96aa000000000, 0x001f01f4f2ef8188},
	{0x0000000000000000, 0x5262400000000000, 0x0037c3ab5dc245e5},
	{0x0000000000000000, 0x0680000000000000, 0x002d3b93311726dc},
	{0x0000000000000000, 0x0000000000000000, 0x000563f45a850621},
	{0x0000000000000000, 0x0000000000000000, 0x001ef8d841b00a00},
	{0x0000000005e8bb32, 0x0000000000000000, 0x0000000000000000},
	{0x016035ce8b6203d4, 0x0000000000000000, 0x0000000000000000},
	{0xe2d469d373af8b11, 0x000000000052015c, 0x0000000000000000},
	{0x005de5eee7ff7b30, 0x001317e5ef3ab327, 0x0000000000000000},
	{0x789df42398391dec, 0x6f4fdf5e13e8a2c4, 0x000000000004720d},
	{0xb422d25e4cd60f17, 0x136ed32ac26bfd75, 0x000108f936baf85c},
	{0xc26df6e01677284c, 0x552795c9cf514391, 0x002b884a27d6e2ab},
	{0xecc7cbb19db2a9a3, 0xda5faf0b5ccf5176, 0x0032082b668c8a86},
	{0x1eeb310179c7a899, 0x6b5893b9006452f8, 0x0020b8e74ec1d336},
	{0x669f700e28387c3a, 0x64f155c841da962c, 0x002d20df8a22ee08},
	{0x7a3462587b147576, 0x2f5502110cdb83b6, 0x000821fab022f799},
	{0xe331927eeca535c2, 0x3fd9c78d7fdd929a, 0x00082434d76deff6},
	{0x7e7c958032c60373, 0x7f0ca2f8b9374fda, 0x001998c6da31e861},
	{0xc8c955f9ad4a9116, 0x54e76cd309993534, 0x000b9ebba44b4569},
	{0x20f971080ca85b3d, 0xb6089b001002d65d, 0x001186826cb3864a},
	{0xacf2c44a981a003c, 0x0c0855bea7c4cf1f, 0x0029cc7fa8dc7089},
	{0xd4d059b655108956, 0x1903b8823158fbbe, 0x0033533939034c45},
	{0x6413dab86e8bf03f, 0xef47ec7ca27c9def, 0x0000c49268836d7f},
	{0xbf0247c75083ff0e, 0xbd06cf9382b1ac51, 0x001e99b40f827793},
	{0xea1820b7b726d1d8, 0x3da5f6b8b22aeea1, 0x001e6071edcadb17},
	{0x0f8b163b9d2efd52, 0xf0d8cf68bea624c5, 0x002f3b263810ac57},
	{0xdca16cad31ec5115, 0xfc9ba0daa223e60e, 0x0003e1cd19663e44},
	{0xaa72283d04e93ca6, 0xf3d0538e2551a73e, 0x0017ce2c08da4303},
	{0x5896db289acde005, 0x680a6e1c7af24a70, 0x0032d16a7272ccf6},
	{0x3b089ca04758a843, 0x085a45ebdabcb529, 0x001abaa6abef6bbf},
	{0xf472d26863c1b4af, 0xa6772dde625b07db, 0x0037be98c2dc9102},
	{0x3bd005e1c0d2010b, 0xe2a39f2e3fdb1273, 0x00335ac8e261b29d},
	{0xb5e286b7a8fbc0dd, 0x8624656c84a9d9b0, 0x0016bf3ced26a0f2},
	{0x1cba983b6ef13e64, 0xbde29406b3fe0ed6, 0x0008fe7331ce731d},
	{0x82713c0abe3bce94, 0x60511e46bd213c00, 0x0030115c017cea3f},
	{0xf1aeb2b18c724510, 0x8608400e6fb6f7e1, 0x001d15841628a4c6},
	{0x432ceb7a661ea000, 0x5ef9c3589036eefa, 0x0009768cf2552d7c},
	{0x4ef911e06a400000, 0x00a74beac8993c4c, 0x0013d4fc3c98d536},
	{0x0197be5680000000, 0xc95f3f5cc5af1f44, 0x0023958c4cdf8fa6},
	{0x2bb9410000000000, 0xa75d7b89a9f29768, 0x00340d484217b1cb},
	{0x474a000000000000, 0xce75c4ed823631ec, 0x0005844d965febc4},
	{0x6400000000000000, 0x21463ada3ff560c4, 0x00165555e002a224},
	{0x0000000000000000, 0x1e783d61178b1ee8, 0x00009cf5f157b611},
	{0x0000000000000000, 0x2d43d663d5f31000, 0x00146bfeadfb8c85},
	{0x0000000000000000, 0x81887fb96aa00000, 0x003a917bb66cf2ef},
	{0x0000000000000000, 0x45e5526240000000, 0x00195ddd4e9f5dc2},
	{0x0000000000000000, 0x26dc068000000000, 0x00251af7ecf53117},
	{0x0000000000000000, 0x0621000000000000, 0x00391691569e5a85},
	{0x0000000000000000, 0x0a00000000000000, 0x0024de9c0fdc41b0},
	{0x0000000000000000, 0x0000000000000000, 0x00334850e208ebe4},
	{0x0000000000000000, 0x0000000000000000, 0x000213c27d49e800},
	{0x00000000000005e9, 0x0000000000000000, 0x0000000000000000},
	{0x0000016035ce8b63, 0x0000000000000000, 0x0000000000000000},
	{0x015ce2d469d373b0, 0x0000000000000052, 0x0000000000000000},
	{0xb327005de5eee800, 0x0000001317e5ef3a, 0x0000000000000000},
	{0xa2c4789df423983a, 0x720d6f4fdf5e13e8, 0x0000000000000004},
	{0xfd75b422d25e4cd7, 0xf85c136ed32ac26b, 0x0000000108f936ba},
	{0x4391c26df6e01678, 0xe2ab552795c9cf51, 0x003a064ca8e627d6},
	{0x5176ecc7cbb19db3, 0x8a86da5faf0b5ccf, 0x0035965818f1668c},
	{0x52f81eeb310179c8, 0xd3366b5893b90064, 0x003834988f634ec1},
	{0x962c669f700e2839, 0xee0864f155c841da, 0x00171f32686b8a22},
	{0x83b67a3462587b15, 0xf7992f5502110cdb, 0x001909dc00deb022},
	{0x929ae331927eeca6, 0xeff63fd9c78d7fdd, 0x0033d93dbb14d76d},
	{0x4fda7e7c958032c7, 0xe8617f0ca2f8b937, 0x0004da40606cda31},
	{0x3534c8c955f9ad4b, 0x456954e76cd30999, 0x0019581aa6bfa44b},
	{0xd65d20f971080ca9, 0x864ab6089b001002, 0x002c9ebd65ea6cb3},
	{0xcf1facf2c44a981b, 0x70890c0855bea7c4, 0x003694cbbdb7a8dc},
	{0xfbbed4d059b65511, 0x4c451903b8823158, 0x002ac2f74dc93903},
	{0x9def6413dab86e8c, 0x6d7fef47ec7ca27c, 0x002ed9ced58c6883},
	{0xac51bf0247c75084, 0x7793bd06cf9382b1, 0x0020b0fbf3c40f82},
	{0xeea1ea1820b7b727, 0xdb173da5f6b8b22a, 0x002da61f1a47edca},
	{0x24c50f8b163b9d2f, 0xac57f0d8cf68bea6, 0x0010bf4b8e283810},
	{0xe60edca16cad31ed, 0x3e44fc9ba0daa223, 0x00095d3d4dfd1966},
	{0xa73eaa72283d04ea, 0x4303f3d0538e2551, 0x003aede38de608da},
	{0x4a705896db289ace, 0xccf6680a6e1c7af2, 0x00358f2123ba7272},
	{0xb5293b089ca04759, 0x6bbf085a45ebdabc, 0x002b691c6c9aabef},
	{0x07dbf472d26863c2, 0x9102a6772dde625b, 0x00240325a786c2dc},
	{0x12733bd005e1c0d3, 0xb29de2a39f2e3fdb, 0x001f606463dce261},
	{0xd9b0b5e286b7a8fc, 0xa0f28624656c84a9, 0x00336dbafd90ed26},
	{0x0ed61cba983b6ef2, 0x731dbde29406b3fe, 0x0021be48eb7531ce},
	{0x3c0082713c0abe3c, 0xea3f60511e46bd21, 0x001b49570406017c},
	{0xf7e1f1aeb2b18c73, 0xa4c68608400e6fb6, 0x000165f96c4e1628},
	{0xeefa432ceb7a661f, 0x2d7c5ef9c3589036, 0x00122e524fe8f255},
	{0x3c4c4ef911e06a40, 0xd53600a74beac899, 0x00363cb337f03c98},
	{0x1f440197be568000, 0x8fa6c95f3f5cc5af, 0x0037ef393ce44cdf},
	{0x97682bb941000000, 0xb1cba75d7b89a9f2, 0x003527c1e9404217},
	{0x31ec474a00000000, 0xebc4ce75c4ed8236, 0x000ef615ec61965f},
	{0x60c4640000000000, 0xa22421463ada3ff5, 0x0016b8a991b1e002},
	{0x1ee8000000000000, 0xb6111e783d61178b, 0x00296a2db7b5f157},
	{0x1000000000000000, 0x8c852d43d663d5f3, 0x002a5ca1f628adfb},
	{0x0000000000000000, 0xf2ef81887fb96aa0, 0x000978b1bbfdb66c},
	{0x0000000000000000, 0x5dc245e552624000, 0x003b12730b794e9f},
	{0x0000000000000000, 0x311726dc06800000, 0x001c3e77be83ecf5},
	{0x0000000000000000, 0x5a85062100000000, 0x001eb76126c9569e},
	{0x0000000000000000, 0x41b00a0000000000, 0x002ee0b378780fdc},
	{0x0000000000000000, 0xebe4000000000000, 0x001bf4400a26e208},
	{0x0000000000000000, 0xe800000000000000, 0x00090d9ab6167d49},
	{0x0000000000000000, 0x0000000000000000, 0x00053c7925c9e110},
	{0x0000000000000000, 0x0000000000000000, 0x002f00ef5f36a000},
	{0x00000000016035cf, 0x0000000000000000, 0x0000000000000000},
	{0x0052015ce2d469d4, 0x0000000000000000, 0x0000000000000000},
	{0xef3ab327005de5ef, 0x00000000001317e5, 0x0000000000000000},
	{0x13e8a2c4789df424, 0x0004720d6f4fdf5e, 0x0000000000000000},
	{0xc26bfd75b422d25f, 0x36baf85c136ed32a, 0x00000000000108f9},
	{0xcf514391c26df6e1, 0x27d6e2ab552795c9, 0x00003db1a69ca8e6},
	{0x5ccf5176ecc7cbb2, 0x668c8a86da5faf0b, 0x002479a642e818f1},
	{0x006452f81eeb3102, 0x4ec1d3366b5893b9, 0x00360a15c7888f63},
	{0x41da962c669f700f, 0x8a22ee0864f155c8, 0x001fcb9de608686b},
	{0x0cdb83b67a346259, 0xb022f7992f550211, 0x0001f5263bec00de},
	{0x7fdd929ae331927f, 0xd76deff63fd9c78d, 0x0036f2e6113dbb14},
	{0xb9374fda7e7c9581, 0xda31e8617f0ca2f8, 0x000e5f710dce606c},
	{0x09993534c8c955fa, 0xa44b456954e76cd3, 0x00300d01efdaa6bf},
	{0x1002d65d20f97109, 0x6cb3864ab6089b00, 0x0032e8a301b965ea},
	{0xa7c4cf1facf2c44b, 0xa8dc70890c0855be, 0x002b2a96a07dbdb7},
	{0x3158fbbed4d059b7, 0x39034c451903b882, 0x001d46c0ac194dc9},
	{0xa27c9def6413dab9, 0x68836d7fef47ec7c, 0x0005e43a2290d58c},
	{0x82b1ac51bf0247c8, 0x0f827793bd06cf93, 0x0021b8ca1b0df3c4},
	{0xb22aeea1ea1820b8, 0xedcadb173da5f6b8, 0x00033f9dd5dd1a47},
	{0xbea624c50f8b163c, 0x3810ac57f0d8cf68, 0x00337abed9cf8e28},
	{0xa223e60edca16cae, 0x19663e44fc9ba0da, 0x003053428f494dfd},
	{0x2551a73eaa72283e, 0x08da4303f3d0538e, 0x0011114c16a58de6},
	{0x7af24a705896db29, 0x7272ccf6680a6e1c, 0x00268bce026323ba},
	{0xdabcb5293b089ca1, 0xabef6bbf085a45eb, 0x0017152db0ba6c9a},
	{0x625b07dbf472d269, 0xc2dc9102a6772dde, 0x002b67c0145da786},
	{0x3fdb12733bd005e2, 0xe261b29de2a39f2e, 0x0015ce3cbc2a63dc},
	{0x84a9d9b0b5e286b8, 0xed26a0f28624656c, 0x0009dea56dd8fd90},
	{0xb3fe0ed61cba983c, 0x31ce731dbde29406, 0x003285a427eaeb75},
	{0xbd213c0082713c0b, 0x017cea3f60511e46, 0x0036b24f04c50406},
	{0x6fb6f7e1f1aeb2b2, 0x1628a4c68608400e, 0x002ddf0d43216c4e},
	{0x9036eefa432ceb7b, 0xf2552d7c5ef9c358, 0x0007c82b858a4fe8},
	{0xc8993c4c4ef911e1, 0x3c98d53600a74bea, 0x0020340be50937f0},
	{0xc5af1f440197be57, 0x4cdf8fa6c95f3f5c, 0x000225774a9f3ce4},
	{0xa9f297682bb94100, 0x4217b1cba75d7b89, 0x00251350e519e940},
	{0x823631ec474a0000, 0x965febc4ce75c4ed, 0x0006086c91efec61},
	{0x3ff560c464000000, 0xe002a22421463ada, 0x0037dc8c00e191b1},
	{0x178b1ee800000000, 0xf157b6111e783d61, 0x003484f7a097b7b5},
	{0xd5f3100000000000, 0xadfb8c852d43d663, 0x002353132907f628},
	{0x6aa0000000000000, 0xb66cf2ef81887fb9, 0x0001da8bbccdbbfd},
	{0x4000000000000000, 0x4e9f5dc245e55262, 0x002fe6b8e6010b79},
	{0x0000000000000000, 0xecf5311726dc0680, 0x00003e46af25be83},
	{0x0000000000000000, 0x569e5a8506210000, 0x0008c9bacb4d26c9},
	{0x0000000000000000, 0x0fdc41b00a000000, 0x0011f6969caf7878},
	{0x0000000000000000, 0xe208ebe400000000, 0x0028dadc98f00a26},
	{0x0000000000000000, 0x7d49e80000000000, 0x0037e37a797eb616},
	{0x0000000000000000, 0xe110000000000000, 0x001d8094b41525c9},
	{0x0000000000000000, 0xa000000000000000, 0x0004ec7ef2215f36},
	{0x0000000000000000, 0x0000000000000000, 0x0007c51f32dd5a40},
	{0x0000000000000000, 0x0000000000000000, 0x003389a3b3b68000},
	{0x0000000000000161, 0x0000000000000000, 0x0000000000000000},
	{0x00000052015ce2d5, 0x0000000000000000, 0x0000000000000000},
	{0x17e5ef3ab327005e, 0x0000000000000013, 0x0000000000000000},
	{0xdf5e13e8a2c4789e, 0x00000004720d6f4f, 0x0000000000000000},
	{0xd32ac26bfd75b423, 0x08f936baf85c136e, 0x0000000000000001},
	{0x95c9cf514391c26e, 0xa8e627d6e2ab5527, 0x000000003db1a69c},
	{0xaf0b5ccf5176ecc8, 0x18f1668c8a86da5f, 0x00295cd082a242e8},
	{0x93b9006452f81eec, 0x8f634ec1d3366b58, 0x0025c787c629c788},
	{0x55c841da962c66a0, 0x686b8a22ee0864f1, 0x0009ba3f78a3e608},
	{0x02110cdb83b67a35, 0x00deb022f7992f55, 0x0026291da4a23bec},
	{0xc78d7fdd929ae332, 0xbb14d76deff63fd9, 0x0025c5e77374113d},
	{0xa2f8b9374fda7e7d, 0x606cda31e8617f0c, 0x001b06272edb0dce},
	{0x6cd309993534c8ca, 0xa6bfa44b456954e7, 0x003300a1b743efda},
	{0x9b001002d65d20fa, 0x65ea6cb3864ab608, 0x000fd15b493901b9},
	{0x55bea7c4cf1facf3, 0xbdb7a8dc70890c08, 0x000d45ddbf60a07d},
	{0xb8823158fbbed4d1, 0x4dc939034c451903, 0x00167f69c500ac19},
	{0xec7ca27c9def6414, 0xd58c68836d7fef47, 0x00002811e3f22290},
	{0xcf9382b1ac51bf03, 0xf3c40f827793bd06, 0x0038605f3b9e1b0d},
	{0xf6b8b22aeea1ea19, 0x1a47edcadb173da5, 0x0024cfd53eebd5dd},
	{0xcf68bea624c50f8c, 0x8e283810ac57f0d8, 0x0036e8e2b2d0d9cf},
	{0xa0daa223e60edca2, 0x4dfd19663e44fc9b, 0x0030a07aa87c8f49},
	{0x538e2551a73eaa73, 0x8de608da4303f3d0, 0x001d0056602216a5},
	{0x6e1c7af24a705897, 0x23ba7272ccf6680a, 0x0007efd4ad2a0263},
	{0x45ebdabcb5293b09, 0x6c9aabef6bbf085a, 0x0009c7f36ec1b0ba},
	{0x2dde625b07dbf473, 0xa786c2dc9102a677, 0x002d18d81ca0145d},
	{0x9f2e3fdb12733bd1, 0x63dce261b29de2a3, 0x0025457c2604bc2a},
	{0x656c84a9d9b0b5e3, 0xfd90ed26a0f28624, 0x00011a3ab2fd6dd8},
	{0x9406b3fe0ed61cbb, 0xeb7531ce731dbde2, 0x003b018d0fa627ea},
	{0x1e46bd213c008272, 0x0406017cea3f6051, 0x0026afaa431504c5},
	{0x400e6fb6f7e1f1af, 0x6c4e1628a4c68608, 0x0004e4cedc354321},
	{0xc3589036eefa432d, 0x4fe8f2552d7c5ef9, 0x000c66ad1d09858a},
	{0x4beac8993c4c4efa, 0x37f03c98d53600a7, 0x00023788b8fde509},
	{0x3f5cc5af1f440198, 0x3ce44cdf8fa6c95f, 0x003b1d4d3e294a9f},
	{0x7b89a9f297682bba, 0xe9404217b1cba75d, 0x00099d2a2bb4e519},
	{0xc4ed823631ec474a, 0xec61965febc4ce75, 0x002a1e2d871e91ef},
	{0x3ada3ff560c46400, 0x91b1e002a2242146, 0x00071e1e34f600e1},
	{0x3d61178b1ee80000, 0xb7b5f157b6111e78, 0x003946f2a0f7a097},
	{0xd663d5f310000000, 0xf628adfb8c852d43, 0x0039a7bcf7532907},
	{0x7fb96aa000000000, 0xbbfdb66cf2ef8188, 0x00135cbd22e5bccd},
	{0x5262400000000000, 0x0b794e9f5dc245e5, 0x00357d6c4510e601},
	{0x0680000000000000, 0xbe83ecf5311726dc, 0x0003ef39efc2af25},
	{0x0000000000000000, 0x26c9569e5a850621, 0x002d5414add0cb4d},
	{0x0000000000000000, 0x78780fdc41b00a00, 0x00309d19d4c49caf},
	{0x0000000000000000, 0x0a26e208ebe40000, 0x002dc6fdd5f498f0},
	{0x0000000000000000, 0xb6167d49e8000000, 0x0038f324536a797e},
	{0x0000000000000000, 0x25c9e11000000000, 0x0018ca614e0eb415},
	{0x0000000000000000, 0x5f36a00000000000, 0x00036c64ce86f221},
	{0x0000000000000000, 0x5a40000000000000, 0x001f6b65d41332dd},
	{0x0000000000000000, 0x8000000000000000, 0x00047854c317b3b6},
	{0x0000000000000000, 0x0000000000000000, 0x000584bfdf170100},
	{0x000000000052015d, 0x0000000000000000, 0x0000000000000000},
	{0x001317e5ef3ab328, 0x0000000000000000, 0x0000000000000000},
	{0x6f4fdf5e13e8a2c5, 0x000000000004720d, 0x0000000000000000},
	{0x136ed32ac26bfd76, 0x000108f936baf85c, 0x0000000000000000},
	{0x552795c9cf514392, 0xa69ca8e627d6e2ab, 0x0000000000003db1},
	{0xda5faf0b5ccf5177, 0x42e818f1668c8a86, 0x00000e5d3ef282a2},
	{0x6b5893b9006452f9, 0xc7888f634ec1d336, 0x003876bd561bc629},
	{0x64f155c841da962d, 0xe608686b8a22ee08, 0x00067776c07b78a3},
	{0x2f5502110cdb83b7, 0x3bec00deb022f799, 0x001cbf75c5cda4a2},
	{0x3fd9c78d7fdd929b, 0x113dbb14d76deff6, 0x002fe148b14f7374},
	{0x7f0ca2f8b9374fdb, 0x0dce606cda31e861, 0x00127fa5e4e52edb},
	{0x54e76cd309993535, 0xefdaa6bfa44b4569, 0x00355c5f82edb743},
	{0xb6089b001002d65e, 0x01b965ea6cb3864a, 0x003758f879c14939},
	{0x0c0855bea7c4cf20, 0xa07dbdb7a8dc7089, 0x002d00beb377bf60},
	{0x1903b8823158fbbf, 0xac194dc939034c45, 0x001be182e21fc500},
	{0xef47ec7ca27c9df0, 0x2290d58c68836d7f, 0x0007659cbb83e3f2},
	{0xbd06cf9382b1ac52, 0x1b0df3c40f827793, 0x001eb547ff7d3b9e},
	{0x3da5f6b8b22aeea2, 0xd5dd1a47edcadb17, 0x001d28761e633eeb},
	{0xf0d8cf68bea624c6, 0xd9cf8e283810ac57, 0x00171b8283ceb2d0},
	{0xfc9ba0daa223e60f, 0x8f494dfd19663e44, 0x00302030cceea87c},
	{0xf3d0538e2551a73f, 0x16a58de608da4303, 0x0037912260e66022},
	{0x680a6e1c7af24a71, 0x026323ba7272ccf6, 0x0035a3737794ad2a},
	{0x085a45ebdabcb52a, 0xb0ba6c9aabef6bbf, 0x00229dce2a756ec1},
	{0xa6772dde625b07dc, 0x145da786c2dc9102, 0x001b5787eda41ca0},
	{0xe2a39f2e3fdb1274, 0xbc2a63dce261b29d, 0x002635d39b942604},
	{0x8624656c84a9d9b1, 0x6dd8fd90ed26a0f2, 0x00227e56dc36b2fd},
	{0xbde29406b3fe0ed7, 0x27eaeb7531ce731d, 0x000cbc533e010fa6},
	{0x60511e46bd213c01, 0x04c50406017cea3f, 0x00003f3f8b804315},
	{0x8608400e6fb6f7e2, 0x43216c4e1628a4c6, 0x001ddd0367acdc35},
	{0x5ef9c3589036eefb, 0x858a4fe8f2552d7c, 0x00283f4524451d09},
	{0x00a74beac8993c4d, 0xe50937f03c98d536, 0x0010177b326ab8fd},
	{0xc95f3f5cc5af1f45, 0x4a9f3ce44cdf8fa6, 0x0018d92a027d3e29},
	{0xa75d7b89a9f29769, 0xe519e9404217b1cb, 0x001d290dbc162bb4},
	{0xce75c4ed823631ed, 0x91efec61965febc4, 0x0005297a7a1b871e},
	{0x21463ada3ff560c5, 0x00e191b1e002a224, 0x000668c90ca434f6},
	{0x1e783d61178b1ee8, 0xa097b7b5f157b611, 0x00263b7e1ffaa0f7},
	{0x2d43d663d5f31000, 0x2907f628adfb8c85, 0x003a5aa3a9fcf753},
	{0x81887fb96aa00000, 0xbccdbbfdb66cf2ef, 0x003ae5f48da322e5},
	{0x45e5526240000000, 0xe6010b794e9f5dc2, 0x0025fbaeaa404510},
	{0x26dc068000000000, 0xaf25be83ecf53117, 0x000ef6c727abefc2},
	{0x0621000000000000, 0xcb4d26c9569e5a85, 0x00280837c4aaadd0},
	{0x0a00000000000000, 0x9caf78780fdc41b0, 0x0027bd425b9bd4c4},
	{0x0000000000000000, 0x98f00a26e208ebe4, 0x002448424445d5f4},
	{0x0000000000000000, 0x797eb6167d49e800, 0x001042892f36536a},
	{0x0000000000000000, 0xb41525c9e1100000, 0x000ca61295df4e0e},
	{0x0000000000000000, 0xf2215f36a0000000, 0x0033fe028bf0ce86},
	{0x0000000000000000, 0x32dd5a4000000000, 0x0038113359f1d413},
	{0x0000000000000000, 0xb3b6800000000000, 0x00384e18d19cc317},
	{0x0000000000000000, 0x0100000000000000, 0x00247fbf849ddf17},
	{0x0000000000000000, 0x0000000000000000, 0x0024c1df1319c0ca},
	{0x0000000000000000, 0x0000000000000000, 0x0005ff00d9a36400},
	{0x0000000000000053, 0x0000000000000000, 0x0000000000000000},
	{0x0000001317e5ef3b, 0x0000000000000000, 0x0000000000000000},
	{0x720d6f4fdf5e13e9, 0x0000000000000004, 0x0000000000000000},
	{0xf85c136ed32ac26c, 0x0000000108f936ba, 0x0000000000000000},
	{0xe2ab552795c9cf52, 0x3db1a69ca8e627d6, 0x0000000000000000},
	{0x8a86da5faf0b5cd0, 0x82a242e818f1668c, 0x000000000e5d3ef2},
	{0xd3366b5893b90065, 0xc629c7888f634ec1, 0x0015b5e355a9561b},
	{0xee0864f155c841db, 0x78a3e608686b8a22, 0x00276d3bd152c07b},
	{0xf7992f5502110cdc, 0xa4a23bec00deb022, 0x001344658af5c5cd},
	{0xeff63fd9c78d7fde, 0x7374113dbb14d76d, 0x0039393150bab14f},
	{0xe8617f0ca2f8b938, 0x2edb0dce606cda31, 0x002b77bf494fe4e5},
	{0x456954e76cd3099a, 0xb743efdaa6bfa44b, 0x00129a0f8e4782ed},
	{0x864ab6089b001003, 0x493901b965ea6cb3, 0x0010a669f98c79c1},
	{0x70890c0855bea7c5, 0xbf60a07dbdb7a8dc, 0x0020b4ffa238b377},
	{0x4c451903b8823159, 0xc500ac194dc93903, 0x000d33a54cc0e21f},
	{0x6d7fef47ec7ca27d, 0xe3f22290d58c6883, 0x002ce8bd8bf0bb83},
	{0x7793bd06cf9382b2, 0x3b9e1b0df3c40f82, 0x00380cc626d5ff7d},
	{0xdb173da5f6b8b22b, 0x3eebd5dd1a47edca, 0x0031d34669ac1e63},
	{0xac57f0d8cf68bea7, 0xb2d0d9cf8e283810, 0x00281312f72e83ce},
	{0x3e44fc9ba0daa224, 0xa87c8f494dfd1966, 0x000ad480a18eccee},
	{0x4303f3d0538e2552, 0x602216a58de608da, 0x00213f92f61a60e6},
	{0xccf6680a6e1c7af3, 0xad2a026323ba7272, 0x0006244833337794},
	{0x6bbf085a45ebdabd, 0x6ec1b0ba6c9aabef, 0x000bfbadcfb42a75},
	{0x9102a6772dde625c, 0x1ca0145da786c2dc, 0x0029f2b8c4abeda4},
	{0xb29de2a39f2e3fdc, 0x2604bc2a63dce261, 0x002807b970d59b94},
	{0xa0f28624656c84aa, 0xb2fd6dd8fd90ed26, 0x0031bc0348a4dc36},
	{0x731dbde29406b3ff, 0x0fa627eaeb7531ce, 0x0026626f29eb3e01},
	{0xea3f60511e46bd22, 0x431504c50406017c, 0x0036c5872a2b8b80},
	{0xa4c68608400e6fb7, 0xdc3543216c4e1628, 0x000a237ad6b167ac},
	{0x2d7c5ef9c3589037, 0x1d09858a4fe8f255, 0x00294e29308b2445},
	{0xd53600a74beac89a, 0xb8fde50937f03c98, 0x0020657d89e3326a},
	{0x8fa6c95f3f5cc5b0, 0x3e294a9f3ce44cdf, 0x0034e5fe329e027d},
	{0xb1cba75d7b89a9f3, 0x2bb4e519e9404217, 0x0024ca1d0aa1bc16},
	{0xebc4ce75c4ed8237, 0x871e91efec61965f, 0x0025a823dfd27a1b},
	{0xa22421463ada3ff6, 0x34f600e191b1e002, 0x00310167e10d0ca4},
	{0xb6111e783d61178c, 0xa0f7a097b7b5f157, 0x000309cdbef61ffa},
	{0x8c852d43d663d5f4, 0xf7532907f628adfb, 0x00394e303519a9fc},
	{0xf2ef81887fb96aa0, 0x22e5bccdbbfdb66c, 0x0005f9b1cf4e8da3},
	{0x5dc245e552624000, 0x4510e6010b794e9f, 0x00124a23c8f0aa40},
	{0x311726dc06800000, 0xefc2af25be83ecf5, 0x003808c120eb27ab},
	{0x5a85062100000000, 0xadd0cb4d26c9569e, 0x0036c0540afdc4aa},
	{0x41b00a0000000000, 0xd4c49caf78780fdc, 0x003b15c3e1ea5b9b},
	{0xebe4000000000000, 0xd5f498f00a26e208, 0x003690d0f2104445},
	{0xe800000000000000, 0x536a797eb6167d49, 0x0003c99200312f36},
	{0x0000000000000000, 0x4e0eb41525c9e110, 0x000b739ebb2895df},
	{0x0000000000000000, 0xce86f2215f36a000, 0x00097314a5948bf0},
	{0x0000000000000000, 0xd41332dd5a400000, 0x00229611e4e159f1},
	{0x0000000000000000, 0xc317b3b680000000, 0x003477fca852d19c},
	{0x0000000000000000, 0xdf17010000000000, 0x0013486292a9849d},
	{0x0000000000000000, 0xc0ca000000000000, 0x0027780fec071319},
	{0x0000000000000000, 0x6400000000000000, 0x0001a5ae01fed9a3},
	{0x0000000000000000, 0x0000000000000000, 0x003b5640ac1114e8},
	{0x0000000000000000, 0x0000000000000000, 0x0003fa25860f1000},
	{0x00000000001317e6, 0x0000000000000000, 0x0000000000000000},
	{0x0004720d6f4fdf5f, 0x0000000000000000, 0x0000000000000000},
	{0x36baf85c136ed32b, 0x00000000000108f9, 0x0000000000000000},
	{0x27d6e2ab552795ca, 0x00003db1a69ca8e6, 0x0000000000000000},
	{0x668c8a86da5faf0c, 0x3ef282a242e818f1, 0x0000000000000e5d},
	{0x4ec1d3366b5893ba, 0x561bc629c7888f63, 0x000003582cef55a9},
	{0x8a22ee0864f155c9, 0xc07b78a3e608686b, 0x0037b974684dd152},
	{0xb022f7992f550212, 0xc5cda4a23bec00de, 0x00121e4b654f8af5},
	{0xd76deff63fd9c78e, 0xb14f7374113dbb14, 0x0012851f001550ba},
	{0xda31e8617f0ca2f9, 0xe4e52edb0dce606c, 0x0004f67e68df494f},
	{0xa44b456954e76cd4, 0x82edb743efdaa6bf, 0x0033fce7b3a98e47},
	{0x6cb3864ab6089b01, 0x79c1493901b965ea, 0x00277a4fdc75f98c},
	{0xa8dc70890c0855bf, 0xb377bf60a07dbdb7, 0x001b77d89579a238},
	{0x39034c451903b883, 0xe21fc500ac194dc9, 0x001c51eea1794cc0},
	{0x68836d7fef47ec7d, 0xbb83e3f22290d58c, 0x001c3e0856b58bf0},
	{0x0f827793bd06cf94, 0xff7d3b9e1b0df3c4, 0x002a4505ea7426d5},
	{0xedcadb173da5f6b9, 0x1e633eebd5dd1a47, 0x001b0b2e554269ac},
	{0x3810ac57f0d8cf69, 0x83ceb2d0d9cf8e28, 0x000f7682a3ecf72e},
	{0x19663e44fc9ba0db, 0xcceea87c8f494dfd, 0x00372c3f6566a18e},
	{0x08da4303f3d0538f, 0x60e6602216a58de6, 0x0017e54a149cf61a},
	{0x7272ccf6680a6e1d, 0x7794ad2a026323ba, 0x00248b9ffa643333},
	{0xabef6bbf085a45ec, 0x2a756ec1b0ba6c9a, 0x00175462b9ebcfb4},
	{0xc2dc9102a6772ddf, 0xeda41ca0145da786, 0x0036e7738a0ec4ab},
	{0xe261b29de2a39f2f, 0x9b942604bc2a63dc, 0x00037041966170d5},
	{0xed26a0f28624656d, 0xdc36b2fd6dd8fd90, 0x0016afebfe6348a4},
	{0x31ce731dbde29407, 0x3e010fa627eaeb75, 0x00171dc6093f29eb},
	{0x017cea3f60511e47, 0x8b80431504c50406, 0x000eb4da45e12a2b},
	{0x1628a4c68608400f, 0x67acdc3543216c4e, 0x00346cdd129ed6b1},
	{0xf2552d7c5ef9c359, 0x24451d09858a4fe8, 0x0024fb855f05308b},
	{0x3c98d53600a74beb, 0x326ab8fde50937f0, 0x000135535d5d89e3},
	{0x4cdf8fa6c95f3f5d, 0x027d3e294a9f3ce4, 0x0015c7561e18329e},
	{0x4217b1cba75d7b8a, 0xbc162bb4e519e940, 0x0005a24bf5910aa1},
	{0x965febc4ce75c4ee, 0x7a1b871e91efec61, 0x0021c5261e07dfd2},
	{0xe002a22421463adb, 0x0ca434f600e191b1, 0x0001d5585d5de10d},
	{0xf157b6111e783d62, 0x1ffaa0f7a097b7b5, 0x0015dba17757bef6},
	{0xadfb8c852d43d664, 0xa9fcf7532907f628, 0x00146e10d61c3519},
	{0xb66cf2ef81887fba, 0x8da322e5bccdbbfd, 0x0006914b1d83cf4e},
	{0x4e9f5dc245e55263, 0xaa404510e6010b79, 0x001eb079d179c8f0},
	{0xecf5311726dc0680, 0x27abefc2af25be83, 0x001c5af2709120eb},
	{0x569e5a8506210000, 0xc4aaadd0cb4d26c9, 0x0021ca5683940afd},
	{0x0fdc41b00a000000, 0x5b9bd4c49caf7878, 0x0022780be9a7e1ea},
	{0xe208ebe400000000, 0x4445d5f498f00a26, 0x00271693625af210},
	{0x7d49e80000000000, 0x2f36536a797eb616, 0x00152cc720860031},
	{0xe110000000000000, 0x95df4e0eb41525c9, 0x001f33112f9ebb28},
	{0xa000000000000000, 0x8bf0ce86f2215f36, 0x0024f51c30a2a594},
	{0x0000000000000000, 0x59f1d41332dd5a40, 0x0025de812e43e4e1},
	{0x0000000000000000, 0xd19cc317b3b68000, 0x000fcecd31e4a852},
	{0x0000000000000000, 0x849ddf1701000000, 0x00353d0cc4f292a9},
	{0x0000000000000000, 0x1319c0ca00000000, 0x00387a78b343ec07},
	{0x0000000000000000, 0xd9a3640000000000, 0x000fd07735e601fe},
	{0x0000000000000000, 0x14e8000000000000, 0x00358d886d0aac11},
	{0x0000000000000000, 0x1000000000000000, 0x00027c1bdddd860f},
	{0x0000000000000000, 0x0000000000000000, 0x003393d6e98782a0},
	{0x0000000000000000, 0x0000000000000000, 0x001f8d0a61524000},
	{0x0000000000000014, 0x0000000000000000, 0x0000000000000000},
	{0x00000004720d6f50, 0x0000000000000000, 0x0000000000000000},
	{0x08f936baf85c136f, 0x0000000000000001, 0x0000000000000000},
	{0xa8e627d6e2ab5528, 0x000000003db1a69c, 0x0000000000000000},
	{0x18f1668c8a86da60, 0x0e5d3ef282a242e8, 0x0000000000000000},
	{0x8f634ec1d3366b59, 0x55a9561bc629c788, 0x0000000003582cef},
	{0x686b8a22ee0864f2, 0xd152c07b78a3e608, 0x001487abc42c684d},
	{0x00deb022f7992f56, 0x8af5c5cda4a23bec, 0x000a56e3b85b654f},
	{0xbb14d76deff63fda, 0x50bab14f7374113d, 0x0015479c64d10015},
	{0x606cda31e8617f0d, 0x494fe4e52edb0dce, 0x0030a963e07e68df},
	{0xa6bfa44b456954e8, 0x8e4782edb743efda, 0x001d6e9a4af7b3a9},
	{0x65ea6cb3864ab609, 0xf98c79c1493901b9, 0x0039ac2d9b8ddc75},
	{0xbdb7a8dc70890c09, 0xa238b377bf60a07d, 0x00210795bf709579},
	{0x4dc939034c451904, 0x4cc0e21fc500ac19, 0x001a3685c980a179},
	{0xd58c68836d7fef48, 0x8bf0bb83e3f22290, 0x001df2fd971256b5},
	{0xf3c40f827793bd07, 0x26d5ff7d3b9e1b0d, 0x0004451278e1ea74},
	{0x1a47edcadb173da6, 0x69ac1e633eebd5dd, 0x003499a211d25542},
	{0x8e283810ac57f0d9, 0xf72e83ceb2d0d9cf, 0x0030f8d38f94a3ec},
	{0x4dfd19663e44fc9c, 0xa18ecceea87c8f49, 0x00229ba782dd6566},
	{0x8de608da4303f3d1, 0xf61a60e6602216a5, 0x00338c3c58fc149c},
	{0x23ba7272ccf6680b, 0x33337794ad2a0263, 0x003ab12b7b67fa64},
	{0x6c9aabef6bbf085b, 0xcfb42a756ec1b0ba, 0x00183593c3a6b9eb},
	{0xa786c2dc9102a678, 0xc4abeda41ca0145d, 0x0026d1a8bf6d8a0e},
	{0x63dce261b29de2a4, 0x70d59b942604bc2a, 0x0019810ce3259661},
	{0xfd90ed26a0f28625, 0x48a4dc36b2fd6dd8, 0x0008c0629447fe63},
	{0xeb7531ce731dbde3, 0x29eb3e010fa627ea, 0x0010c328b832093f},
	{0x0406017cea3f6052, 0x2a2b8b80431504c5, 0x000ba66299f445e1},
	{0x6c4e1628a4c68609, 0xd6b167acdc354321, 0x0038dfcdad4f129e},
	{0x4fe8f2552d7c5efa, 0x308b24451d09858a, 0x0012691a33b95f05},
	{0x37f03c98d53600a8, 0x89e3326ab8fde509, 0x002b28fba0495d5d},
	{0x3ce44cdf8fa6c960, 0x329e027d3e294a9f, 0x001114e09cb81e18},
	{0xe9404217b1cba75e, 0x0aa1bc162bb4e519, 0x002ade42f5f7f591},
	{0xec61965febc4ce76, 0xdfd27a1b871e91ef, 0x0039bb85ce781e07},
	{0x91b1e002a2242147, 0xe10d0ca434f600e1, 0x001bf78ca9045d5d},
	{0xb7b5f157b6111e79, 0xbef61ffaa0f7a097, 0x000104283f037757},
	{0xf628adfb8c852d44, 0x3519a9fcf7532907, 0x0000ce99bff6d61c},
	{0xbbfdb66cf2ef8189, 0xcf4e8da322e5bccd, 0x0039789812271d83},
	{0x0b794e9f5dc245e6, 0xc8f0aa404510e601, 0x00091b73ff5bd179},
	{0xbe83ecf5311726dd, 0x20eb27abefc2af25, 0x001560cb87dc7091},
	{0x26c9569e5a850621, 0x0afdc4aaadd0cb4d, 0x0033533b1ab68394},
	{0x78780fdc41b00a00, 0xe1ea5b9bd4c49caf, 0x002a7eae4969e9a7},
	{0x0a26e208ebe40000, 0xf2104445d5f498f0, 0x0018a8e3d26d625a},
	{0xb6167d49e8000000, 0x00312f36536a797e, 0x001977ce701b2086},
	{0x25c9e11000000000, 0xbb2895df4e0eb415, 0x000650e5da512f9e},
	{0x5f36a00000000000, 0xa5948bf0ce86f221, 0x0012e7104a3230a2},
	{0x5a40000000000000, 0xe4e159f1d41332dd, 0x000baf8e58612e43},
	{0x8000000000000000, 0xa852d19cc317b3b6, 0x0016a06c291931e4},
	{0x0000000000000000, 0x92a9849ddf170100, 0x0005ddbb97b6c4f2},
	{0x0000000000000000, 0xec071319c0ca0000, 0x002a8de69920b343},
	{0x0000000000000000, 0x01fed9a364000000, 0x00079d164bb535e6},
	{0x0000000000000000, 0xac1114e800000000, 0x002a30fd6b5a6d0a},
	{0x0000000000000000, 0x860f100000000000, 0x00150dce681ddddd},
	{0x0000000000000000, 0x82a0000000000000, 0x0006f4311638e987},
	{0x0000000000000000, 0x4000000000000000, 0x000d403b9ee46152},
	{0x0000000000000000, 0x0000000000000000, 0x00352c84b5056680},
	{0x000000000004720e, 0x0000000000000000, 0x0000000000000000},
	{0x000108f936baf85d, 0x0000000000000000, 0x0000000000000000},
	{0xa69ca8e627d6e2ac, 0x0000000000003db1, 0x0000000000000000},
	{0x42e818f1668c8a87, 0x00000e5d3ef282a2, 0x0000000000000000},
	{0xc7888f634ec1d337, 0x2cef55a9561bc629, 0x0000000000000358},
	{0xe608686b8a22ee09, 0x684dd152c07b78a3, 0x000000c75809c42c},
	{0x3bec00deb022f79a, 0x654f8af5c5cda4a2, 0x0002461df38bb85b},
	{0x113dbb14d76deff7, 0x001550bab14f7374, 0x002087f836cc64d1},
	{0x0dce606cda31e862, 0x68df494fe4e52edb, 0x002f96d2184be07e},
	{0xefdaa6bfa44b456a, 0xb3a98e4782edb743, 0x0011aa9e0d5a4af7},
	{0x01b965ea6cb3864b, 0xdc75f98c79c14939, 0x001505df6e919b8d},
	{0xa07dbdb7a8dc708a, 0x9579a238b377bf60, 0x0021e6e429e3bf70},
	{0xac194dc939034c46, 0xa1794cc0e21fc500, 0x003506d3d13bc980},
	{0x2290d58c68836d80, 0x56b58bf0bb83e3f2, 0x000deb9709979712},
	{0x1b0df3c40f827794, 0xea7426d5ff7d3b9e, 0x00234b79b83878e1},
	{0xd5dd1a47edcadb18, 0x554269ac1e633eeb, 0x000d2601585211d2},
	{0xd9cf8e283810ac58, 0xa3ecf72e83ceb2d0, 0x00131bbaf43d8f94},
	{0x8f494dfd19663e45, 0x6566a18ecceea87c, 0x000e5550347d82dd},
	{0x16a58de608da4304, 0x149cf61a60e66022, 0x001d390cc8d058fc},
	{0x026323ba7272ccf7, 0xfa6433337794ad2a, 0x0030827c069b7b67},
	{0xb0ba6c9aabef6bc0, 0xb9ebcfb42a756ec1, 0x00243373e2a1c3a6},
	{0x145da786c2dc9103, 0x8a0ec4abeda41ca0, 0x0025a9e6c386bf6d},
	{0xbc2a63dce261b29e, 0x966170d59b942604, 0x001f5f97b9c2e325},
	{0x6dd8fd90ed26a0f3, 0xfe6348a4dc36b2fd, 0x002d603015809447},
	{0x27eaeb7531ce731e, 0x093f29eb3e010fa6, 0x001defeb3ff0b832},
	{0x04c50406017cea40, 0x45e12a2b8b804315, 0x00380c00479299f4},
	{0x43216c4e1628a4c7, 0x129ed6b167acdc35, 0x0022221f9687ad4f},
	{0x858a4fe8f2552d7d, 0x5f05308b24451d09, 0x001f96fa899c33b9},
	{0xe50937f03c98d537, 0x5d5d89e3326ab8fd, 0x00245e5e1739a049},
	{0x4a9f3ce44cdf8fa7, 0x1e18329e027d3e29, 0x000d6ac8cd209cb8},
	{0xe519e9404217b1cc, 0xf5910aa1bc162bb4, 0x000797d6715af5f7},
	{0x91efec61965febc5, 0x1e07dfd27a1b871e, 0x00152dafe2d7ce78},
	{0x00e191b1e002a225, 0x5d5de10d0ca434f6, 0x00323f122c18a904},
	{0xa097b7b5f157b612, 0x7757bef61ffaa0f7, 0x0005bddd23823f03},
	{0x2907f628adfb8c86, 0xd61c3519a9fcf753, 0x001e53467a4fbff6},
	{0xbccdbbfdb66cf2f0, 0x1d83cf4e8da322e5, 0x001291764b4e1227},
	{0xe6010b794e9f5dc3, 0xd179c8f0aa404510, 0x00122d6389a7ff5b},
	{0xaf25be83ecf53118, 0x709120eb27abefc2, 0x00271d6e560187dc},
	{0xcb4d26c9569e5a86, 0x83940afdc4aaadd0, 0x00005b3cbdc11ab6},
	{0x9caf78780fdc41b1, 0xe9a7e1ea5b9bd4c4, 0x002cf5ea81324969},
	{0x98f00a26e208ebe4, 0x625af2104445d5f4, 0x000bb553407dd26d},
	{0x797eb6167d49e800, 0x208600312f36536a, 0x001d4b931382701b},
	{0xb41525c9e1100000, 0x2f9ebb2895df4e0e, 0x001e5eb49d45da51},
	{0xf2215f36a0000000, 0x30a2a5948bf0ce86, 0x0010438d29144a32},
	{0x32dd5a4000000000, 0x2e43e4e159f1d413, 0x0004b95e35f25861},
	{0xb3b6800000000000, 0x31e4a852d19cc317, 0x00386ce6c9dc2919},
	{0x0100000000000000, 0xc4f292a9849ddf17, 0x00334297401597b6},
	{0x0000000000000000, 0xb343ec071319c0ca, 0x000507056d0c9920},
	{0x0000000000000000, 0x35e601fed9a36400, 0x0002eee897d04bb5},
	{0x0000000000000000, 0x6d0aac1114e80000, 0x00307f64aa2b6b5a},
	{0x0000000000000000, 0xdddd860f10000000, 0x000a1bfeae3c681d},
	{0x0000000000000000, 0xe98782a000000000, 0x000e10852e411638},
	{0x0000000000000000, 0x6152400000000000, 0x000f2779d7979ee4},
	{0x0000000000000000, 0x6680000000000000, 0x00234d4bdb30b505},
	{0x0000000000000000, 0x0000000000000000, 0x000b572b92b56be1},
	{0x0000000000000000, 0x0000000000000000, 0x002a3d8ee7798a00},
	{0x0000000000000005, 0x0000000000000000, 0x0000000000000000},
	{0x0000000108f936bb, 0x0000000000000000, 0x0000000000000000},
	{0x3db1a69ca8e627d7, 0x0000000000000000, 0x0000000000000000},
	{0x82a242e818f1668d, 0x000000000e5d3ef2, 0x0000000000000000},
	{0xc629c7888f634ec2, 0x03582cef55a9561b, 0x0000000000000000},
	{0x78a3e608686b8a23, 0xc42c684dd152c07b, 0x0000000000c75809},
	{0xa4a23bec00deb023, 0xb85b654f8af5c5cd, 0x002e69d2818df38b},
	{0x7374113dbb14d76e, 0x64d1001550bab14f, 0x00210cf5b7b636cc},
	{0x2edb0dce606cda32, 0xe07e68df494fe4e5, 0x002a6ccdd96e184b},
	{0xb743efdaa6bfa44c, 0x4af7b3a98e4782ed, 0x0019a22af98e0d5a},
	{0x493901b965ea6cb4, 0x9b8ddc75f98c79c1, 0x002112f7ee216e91},
	{0xbf60a07dbdb7a8dd, 0xbf709579a238b377, 0x0007c8b273b029e3},
	{0xc500ac194dc93904, 0xc980a1794cc0e21f, 0x0029042bb12dd13b},
	{0xe3f22290d58c6884, 0x971256b58bf0bb83, 0x000aaaeccc810997},
	{0x3b9e1b0df3c40f83, 0x78e1ea7426d5ff7d, 0x001e0b3b8693b838},
	{0x3eebd5dd1a47edcb, 0x11d2554269ac1e63, 0x002264c665315852},
	{0xb2d0d9cf8e283811, 0x8f94a3ecf72e83ce, 0x000b7d30fb2af43d},
	{0xa87c8f494dfd1967, 0x82dd6566a18eccee, 0x000a004301d8347d},
	{0x602216a58de608db, 0x58fc149cf61a60e6, 0x003256d31a14c8d0},
	{0xad2a026323ba7273, 0x7b67fa6433337794, 0x0004d6d9384c069b},
	{0x6ec1b0ba6c9aabf0, 0xc3a6b9ebcfb42a75, 0x0011b37dcc2fe2a1},
	{0x1ca0145da786c2dd, 0xbf6d8a0ec4abeda4, 0x000b262f663ac386},
	{0x2604bc2a63dce262, 0xe325966170d59b94, 0x000dae980b75b9c2},
	{0xb2fd6dd8fd90ed27, 0x9447fe6348a4dc36, 0x001b68fe8e2a1580},
	{0x0fa627eaeb7531cf, 0xb832093f29eb3e01, 0x0009cc66c67d3ff0},
	{0x431504c50406017d, 0x99f445e12a2b8b80, 0x001d2977c5b64792},
	{0xdc3543216c4e1629, 0xad4f129ed6b167ac, 0x002a70b5ac259687},
	{0x1d09858a4fe8f256, 0x33b95f05308b2445, 0x0008c06b7b56899c},
	{0xb8fde50937f03c99, 0xa0495d5d89e3326a, 0x0014260a10781739},
	{0x3e294a9f3ce44ce0, 0x9cb81e18329e027d, 0x001bf5f702eecd20},
	{0x2bb4e519e9404218, 0xf5f7f5910aa1bc16, 0x003799aa5798715a},
	{0x871e91efec619660, 0xce781e07dfd27a1b, 0x00237e4c70d9e2d7},
	{0x34f600e191b1e003, 0xa9045d5de10d0ca4, 0x0032bb061f662c18},
	{0xa0f7a097b7b5f158, 0x3f037757bef61ffa, 0x0017c9f0d4952382},
	{0xf7532907f628adfc, 0xbff6d61c3519a9fc, 0x0022b95c0ee47a4f},
	{0x22e5bccdbbfdb66d, 0x12271d83cf4e8da3, 0x003532563dba4b4e},
	{0x4510e6010b794ea0, 0xff5bd179c8f0aa40, 0x002b5fff4a9189a7},
	{0xefc2af25be83ecf6, 0x87dc709120eb27ab, 0x0021e2b95d885601},
	{0xadd0cb4d26c9569f, 0x1ab683940afdc4aa, 0x001fbe41ab18bdc1},
	{0xd4c49caf78780fdd, 0x4969e9a7e1ea5b9b, 0x0005c2b12d0c8132},
	{0xd5f498f00a26e209, 0xd26d625af2104445, 0x0002e9562d1d407d},
	{0x536a797eb6167d4a, 0x701b208600312f36, 0x0006cf8ce0131382},
	{0x4e0eb41525c9e110, 0xda512f9ebb2895df, 0x00047107d9b29d45},
	{0xce86f2215f36a000, 0x4a3230a2a5948bf0, 0x0029963ea56f2914},
	{0xd41332dd5a400000, 0x58612e43e4e159f1, 0x0019e1ae19b835f2},
	{0xc317b3b680000000, 0x291931e4a852d19c, 0x002ae3d0a8b8c9dc},
	{0xdf17010000000000, 0x97b6c4f292a9849d, 0x002b0640fb314015},
	{0xc0ca000000000000, 0x9920b343ec071319, 0x000b778c63856d0c},
	{0x6400000000000000, 0x4bb535e601fed9a3, 0x001f10cec8ea97d0},
	{0x0000000000000000, 0x6b5a6d0aac1114e8, 0x00369ed5708aaa2b},
	{0x0000000000000000, 0x681ddddd860f1000, 0x0020490fca22ae3c},
	{0x0000000000000000, 0x1638e98782a00000, 0x0008132019d12e41},
	{0x0000000000000000, 0x9ee4615240000000, 0x0030b423e1c5d797},
	{0x0000000000000000, 0xb505668000000000, 0x002e104fbef1db30},
	{0x0000000000000000, 0x6be1000000000000, 0x00384fc0ebf992b5},
	{0x0000000000000000, 0x8a00000000000000, 0x003a1bb6fec2e779},
	{0x0000000000000000, 0x0000000000000000, 0x002d61320c90eae4},
	{0x0000000000000000, 0x0000000000000000, 0x0021bdc2327fe800},
	{0x00000000000108fa, 0x0000000000000000, 0x0000000000000000},
	{0x00003db1a69ca8e7, 0x0000000000000000, 0x0000000000000000},
	{0x3ef282a242e818f2, 0x0000000000000e5d, 0x0000000000000000},
	{0x561bc629c7888f64, 0x000003582cef55a9, 0x0000000000000000},
	{0xc07b78a3e608686c, 0x5809c42c684dd152, 0x00000000000000c7},
	{0xc5cda4a23bec00df, 0xf38bb85b654f8af5, 0x0000002e69d2818d},
	{0xb14f7374113dbb15, 0x36cc64d1001550ba, 0x00310323c0bfb7b6},
	{0xe4e52edb0dce606d, 0x184be07e68df494f, 0x002ca342c933d96e},
	{0x82edb743efdaa6c0, 0x0d5a4af7b3a98e47, 0x000c12761564f98e},
	{0x79c1493901b965eb, 0x6e919b8ddc75f98c, 0x001782918971ee21},
	{0xb377bf60a07dbdb8, 0x29e3bf709579a238, 0x001a86c4da7e73b0},
	{0xe21fc500ac194dca, 0xd13bc980a1794cc0, 0x001d711ef8e9b12d},
	{0xbb83e3f22290d58d, 0x0997971256b58bf0, 0x003669228a96cc81},
	{0xff7d3b9e1b0df3c5, 0xb83878e1ea7426d5, 0x00231c4fc0338693},
	{0x1e633eebd5dd1a48, 0x585211d2554269ac, 0x000bff2ba8826531},
	{0x83ceb2d0d9cf8e29, 0xf43d8f94a3ecf72e, 0x001e5c2a22e2fb2a},
	{0xcceea87c8f494dfe, 0x347d82dd6566a18e, 0x0034d921185101d8},
	{0x60e6602216a58de7, 0xc8d058fc149cf61a, 0x0012dc67db9d1a14},
	{0x7794ad2a026323bb, 0x069b7b67fa643333, 0x00249400715d384c},
	{0x2a756ec1b0ba6c9b, 0xe2a1c3a6b9ebcfb4, 0x0015b456f1adcc2f},
	{0xeda41ca0145da787, 0xc386bf6d8a0ec4ab, 0x002877250127663a},
	{0x9b942604bc2a63dd, 0xb9c2e325966170d5, 0x00092c6221140b75},
	{0xdc36b2fd6dd8fd91, 0x15809447fe6348a4, 0x0004aac2d7ac8e2a},
	{0x3e010fa627eaeb76, 0x3ff0b832093f29eb, 0x00282d196072c67d},
	{0x8b80431504c50407, 0x479299f445e12a2b, 0x001ab924d5b3c5b6},
	{0x67acdc3543216c4f, 0x9687ad4f129ed6b1, 0x0029db43cc27ac25},
	{0x24451d09858a4fe9, 0x899c33b95f05308b, 0x00093ca986237b56},
	{0x326ab8fde50937f1, 0x1739a0495d5d89e3, 0x000842e123181078},
	{0x027d3e294a9f3ce5, 0xcd209cb81e18329e, 0x00059a58929702ee},
	{0xbc162bb4e519e941, 0x715af5f7f5910aa1, 0x002328fbf53e5798},
	{0x7a1b871e91efec62, 0xe2d7ce781e07dfd2, 0x000e83e204f270d9},
	{0x0ca434f600e191b2, 0x2c18a9045d5de10d, 0x0038729967661f66},
	{0x1ffaa0f7a097b7b6, 0x23823f037757bef6, 0x0017c6fc0466d495},
	{0xa9fcf7532907f629, 0x7a4fbff6d61c3519, 0x0017f12b64a40ee4},
	{0x8da322e5bccdbbfe, 0x4b4e12271d83cf4e, 0x002632a111623dba},
	{0xaa404510e6010b7a, 0x89a7ff5bd179c8f0, 0x0016dfa096214a91},
	{0x27abefc2af25be84, 0x560187dc709120eb, 0x0007c050ab1d5d88},
	{0xc4aaadd0cb4d26ca, 0xbdc11ab683940afd, 0x0006d64fdba3ab18},
	{0x5b9bd4c49caf7879, 0x81324969e9a7e1ea, 0x00261b64c59f2d0c},
	{0x4445d5f498f00a27, 0x407dd26d625af210, 0x00250fa094d82d1d},
	{0x2f36536a797eb617, 0x1382701b20860031, 0x0032551b750ee013},
	{0x95df4e0eb41525ca, 0x9d45da512f9ebb28, 0x000376a2edc7d9b2},
	{0x8bf0ce86f2215f37, 0x29144a3230a2a594, 0x002e8802d178a56f},
	{0x59f1d41332dd5a40, 0x35f258612e43e4e1, 0x001c171355e019b8},
	{0xd19cc317b3b68000, 0xc9dc291931e4a852, 0x00342d6dc18aa8b8},
	{0x849ddf1701000000, 0x401597b6c4f292a9, 0x002048b97ed0fb31},
	{0x1319c0ca00000000, 0x6d0c9920b343ec07, 0x0030a8405b9a6385},
	{0xd9a3640000000000, 0x97d04bb535e601fe, 0x0023f24970ecc8ea},
	{0x14e8000000000000, 0xaa2b6b5a6d0aac11, 0x00372179c4a5708a},
	{0x1000000000000000, 0xae3c681ddddd860f, 0x002684f8336fca22},
	{0x0000000000000000, 0x2e411638e98782a0, 0x001a072dcc8419d1},
	{0x0000000000000000, 0xd7979ee461524000, 0x001ec1d2f9dde1c5},
	{0x0000000000000000, 0xdb30b50566800000, 0x0033a9317dd9bef1},
	{0x0000000000000000, 0x92b56be100000000, 0x0032b2aa6bacebf9},
	{0x0000000000000000, 0xe7798a0000000000, 0x002842f0eb24fec2},
	{0x0000000000000000, 0xeae4000000000000, 0x00089d155d9e0c90},
	{0x0000000000000000, 0xe800000000000000, 0x0024cc75ab3a327f},
	{0x0000000000000000, 0x0000000000000000, 0x000d8cd3c7427d10},
	{0x0000000000000000, 0x0000000000000000, 0x000f7b06624ea000},
	{0x0000000000000002, 0x0000000000000000, 0x0000000000000000},
	{0x000000003db1a69d, 0x0000000000000000, 0x0000000000000000},
	{0x0e5d3ef282a242e9, 0x0000000000000000, 0x0000000000000000},
	{0x55a9561bc629c789, 0x0000000003582cef, 0x0000000000000000},
	{0xd152c07b78a3e609, 0x00c75809c42c684d, 0x0000000000000000},
	{0x8af5c5cda4a23bed, 0x818df38bb85b654f, 0x00000000002e69d2},
	{0x50bab14f7374113e, 0xb7b636cc64d10015, 0x000ace73cbfdc0bf},
	{0x494fe4e52edb0dcf, 0xd96e184be07e68df, 0x003b14da5cc2c933},
	{0x8e4782edb743efdb, 0xf98e0d5a4af7b3a9, 0x002d5a25af101564},
	{0xf98c79c1493901ba, 0xee216e919b8ddc75, 0x0003bea7d5238971},
	{0xa238b377bf60a07e, 0x73b029e3bf709579, 0x00084629fadeda7e},
	{0x4cc0e21fc500ac1a, 0xb12dd13bc980a179, 0x0033e31a6d22f8e9},
	{0x8bf0bb83e3f22291, 0xcc810997971256b5, 0x0008248330d28a96},
	{0x26d5ff7d3b9e1b0e, 0x8693b83878e1ea74, 0x0031053e4133c033},
	{0x69ac1e633eebd5de, 0x6531585211d25542, 0x000c0c9654aba882},
	{0xf72e83ceb2d0d9d0, 0xfb2af43d8f94a3ec, 0x0027f7a0deba22e2},
	{0xa18ecceea87c8f4a, 0x01d8347d82dd6566, 0x002b56962bf51851},
	{0xf61a60e6602216a6, 0x1a14c8d058fc149c, 0x003910ccb157db9d},
	{0x33337794ad2a0264, 0x384c069b7b67fa64, 0x001474bca4ce715d},
	{0xcfb42a756ec1b0bb, 0xcc2fe2a1c3a6b9eb, 0x003010f39380f1ad},
	{0xc4abeda41ca0145e, 0x663ac386bf6d8a0e, 0x001e05aa2f4f0127},
	{0x70d59b942604bc2b, 0x0b75b9c2e3259661, 0x001265091d2c2114},
	{0x48a4dc36b2fd6dd9, 0x8e2a15809447fe63, 0x000a464e56ccd7ac},
	{0x29eb3e010fa627eb, 0xc67d3ff0b832093f, 0x002fb19024bf6072},
	{0x2a2b8b80431504c6, 0xc5b6479299f445e1, 0x002c8ef17ae4d5b3},
	{0xd6b167acdc354322, 0xac259687ad4f129e, 0x0035479d8d55cc27},
	{0x308b24451d09858b, 0x7b56899c33b95f05, 0x0013f9eda7a18623},
	{0x89e3326ab8fde50a, 0x10781739a0495d5d, 0x00259b94529d2318},
	{0x329e027d3e294aa0, 0x02eecd209cb81e18, 0x00249619a5f69297},
	{0x0aa1bc162bb4e51a, 0x5798715af5f7f591, 0x003968df8c2ff53e},
	{0xdfd27a1b871e91f0, 0x70d9e2d7ce781e07, 0x000b2a84bd3404f2},
	{0xe10d0ca434f600e2, 0x1f662c18a9045d5d, 0x000c1c97e5c16766},
	{0xbef61ffaa0f7a098, 0xd49523823f037757, 0x002d07c558420466},
	{0x3519a9fcf7532908, 0x0ee47a4fbff6d61c, 0x000f5eee705364a4},
	{0xcf4e8da322e5bcce, 0x3dba4b4e12271d83, 0x00136a9e27891162},
	{0xc8f0aa404510e602, 0x4a9189a7ff5bd179, 0x001fe9e2410a9621},
	{0x20eb27abefc2af26, 0x5d88560187dc7091, 0x0002770056acab1d},
	{0x0afdc4aaadd0cb4e, 0xab18bdc11ab68394, 0x002833d6f33ddba3},
	{0xe1ea5b9bd4c49cb0, 0x2d0c81324969e9a7, 0x000e6705a832c59f},
	{0xf2104445d5f498f1, 0x2d1d407dd26d625a, 0x000bd23ea11294d8},
	{0x00312f36536a797f, 0xe0131382701b2086, 0x0004538a05e3750e},
	{0xbb2895df4e0eb416, 0xd9b29d45da512f9e, 0x0034f58252f4edc7},
	{0xa5948bf0ce86f222, 0xa56f29144a3230a2, 0x003906e55d04d178},
	{0xe4e159f1d41332de, 0x19b835f258612e43, 0x00011f309dfd55e0},
	{0xa852d19cc317b3b7, 0xa8b8c9dc291931e4, 0x003afbf8347fc18a},
	{0x92a9849ddf170100, 0xfb31401597b6c4f2, 0x001dbeda31037ed0},
	{0xec071319c0ca0000, 0x63856d0c9920b343, 0x0000d05735ac5b9a},
	{0x01fed9a364000000, 0xc8ea97d04bb535e6, 0x00282153b01770ec},
	{0xac1114e800000000, 0x708aaa2b6b5a6d0a, 0x00057532ffd9c4a5},
	{0x860f100000000000, 0xca22ae3c681ddddd, 0x0032b3fe41a0336f},
	{0x82a0000000000000, 0x19d12e411638e987, 0x00254cb81d6bcc84},
	{0x4000000000000000, 0xe1c5d7979ee46152, 0x0019195088caf9dd},
	{0x0000000000000000, 0xbef1db30b5056680, 0x002f42509bab7dd9},
	{0x0000000000000000, 0xebf992b56be10000, 0x0027edb2354c6bac},
	{0x0000000000000000, 0xfec2e7798a000000, 0x0011cb05ed5eeb24},
	{0x0000000000000000, 0x0c90eae400000000, 0x00161995e0835d9e},
	{0x0000000000000000, 0x327fe80000000000, 0x001e960165d7ab3a},
	{0x0000000000000000, 0x7d10000000000000, 0x003236dd97c1c742},
	{0x0000000000000000, 0xa000000000000000, 0x002d1e17180c624e},
	{0x0000000000000000, 0x0000000000000000, 0x0002e22507be4a40},
	{0x0000000000000000, 0x0000000000000000, 0x002c4e2b91168000},
	{0x0000000000003db2, 0x0000000000000000, 0x0000000000000000},
	{0x00000e5d3ef282a3, 0x0000000000000000, 0x0000000000000000},
	{0x2cef55a9561bc62a, 0x0000000000000358, 0x0000000000000000},
	{0x684dd152c07b78a4, 0x000000c75809c42c, 0x0000000000000000},
	{0x654f8af5c5cda4a3, 0x69d2818df38bb85b, 0x000000000000002e},
	{0x001550bab14f7375, 0xc0bfb7b636cc64d1, 0x0000000ace73cbfd},
	{0x68df494fe4e52edc, 0xc933d96e184be07e, 0x001af60791085cc2},
	{0xb3a98e4782edb744, 0x1564f98e0d5a4af7, 0x0001f26f4abdaf10},
	{0xdc75f98c79c1493a, 0x8971ee216e919b8d, 0x002c2a09b0bdd523},
	{0x9579a238b377bf61, 0xda7e73b029e3bf70, 0x002c32e7323bfade},
	{0xa1794cc0e21fc501, 0xf8e9b12dd13bc980, 0x000df7159a5e6d22},
	{0x56b58bf0bb83e3f3, 0x8a96cc8109979712, 0x0015fc3f388530d2},
	{0xea7426d5ff7d3b9f, 0xc0338693b83878e1, 0x001f02c8fd1e4133},
	{0x554269ac1e633eec, 0xa8826531585211d2, 0x00070b5205e054ab},
	{0xa3ecf72e83ceb2d1, 0x22e2fb2af43d8f94, 0x00343b2781e8deba},
	{0x6566a18ecceea87d, 0x185101d8347d82dd, 0x00363822a1c22bf5},
	{0x149cf61a60e66023, 0xdb9d1a14c8d058fc, 0x002d358924bab157},
	{0xfa6433337794ad2b, 0x715d384c069b7b67, 0x002b77c13e66a4ce},
	{0xb9ebcfb42a756ec2, 0xf1adcc2fe2a1c3a6, 0x0017e60bb65b9380},
	{0x8a0ec4abeda41ca1, 0x0127663ac386bf6d, 0x0015525db5a82f4f},
	{0x966170d59b942605, 0x21140b75b9c2e325, 0x00272898601f1d2c},
	{0xfe6348a4dc36b2fe, 0xd7ac8e2a15809447, 0x00073e89453056cc},
	{0x093f29eb3e010fa7, 0x6072c67d3ff0b832, 0x000b413b916c24bf},
	{0x45e12a2b8b804316, 0xd5b3c5b6479299f4, 0x00192ddb8b597ae4},
	{0x129ed6b167acdc36, 0xcc27ac259687ad4f, 0x0014d56d45e18d55},
	{0x5f05308b24451d0a, 0x86237b56899c33b9, 0x003483f3c52fa7a1},
	{0x5d5d89e3326ab8fe, 0x231810781739a049, 0x000b1872ab5a529d},
	{0x1e18329e027d3e2a, 0x929702eecd209cb8, 0x001507a72ecda5f6},
	{0xf5910aa1bc162bb5, 0xf53e5798715af5f7, 0x002fe197ef118c2f},
	{0x1e07dfd27a1b871f, 0x04f270d9e2d7ce78, 0x000415eb3afcbd34},
	{0x5d5de10d0ca434f7, 0x67661f662c18a904, 0x003ad86c3bb9e5c1},
	{0x7757bef61ffaa0f8, 0x0466d49523823f03, 0x002b485a78775842},
	{0xd61c3519a9fcf754, 0x64a40ee47a4fbff6, 0x001bc9807a5e7053},
	{0x1d83cf4e8da322e6, 0x11623dba4b4e1227, 0x0015fcfd4efe2789},
	{0xd179c8f0aa404511, 0x96214a9189a7ff5b, 0x003b2cc8eaa8410a},
	{0x709120eb27abefc3, 0xab1d5d88560187dc, 0x00272cb9544a56ac},
	{0x83940afdc4aaadd1, 0xdba3ab18bdc11ab6, 0x00114eec97b2f33d},
	{0xe9a7e1ea5b9bd4c5, 0xc59f2d0c81324969, 0x0029aa42c8c3a832},
	{0x625af2104445d5f5, 0x94d82d1d407dd26d, 0x002d8e1144cea112},
	{0x208600312f36536b, 0x750ee0131382701b, 0x00301c0f389405e3},
	{0x2f9ebb2895df4e0f, 0xedc7d9b29d45da51, 0x002276dbc37452f4},
	{0x30a2a5948bf0ce87, 0xd178a56f29144a32, 0x001b157423995d04},
	{0x2e43e4e159f1d414, 0x55e019b835f25861, 0x0023b52b14929dfd},
	{0x31e4a852d19cc318, 0xc18aa8b8c9dc2919, 0x002223101dda347f},
	{0xc4f292a9849ddf18, 0x7ed0fb31401597b6, 0x0032ce0933e23103},
	{0xb343ec071319c0ca, 0x5b9a63856d0c9920, 0x0034aa0fc50135ac},
	{0x35e601fed9a36400, 0x70ecc8ea97d04bb5, 0x00004819f725b017},
	{0x6d0aac1114e80000, 0xc4a5708aaa2b6b5a, 0x0008c65f1212ffd9},
	{0xdddd860f10000000, 0x336fca22ae3c681d, 0x00046c74173441a0},
	{0xe98782a000000000, 0xcc8419d12e411638, 0x000c2ab8a2021d6b},
	{0x6152400000000000, 0xf9dde1c5d7979ee4, 0x00007e0f363288ca},
	{0x6680000000000000, 0x7dd9bef1db30b505, 0x000bc414f1a09bab},
	{0x0000000000000000, 0x6bacebf992b56be1, 0x002564fce600354c},
	{0x0000000000000000, 0xeb24fec2e7798a00, 0x00000c68d6d7ed5e},
	{0x0000000000000000, 0x5d9e0c90eae40000, 0x003246440c97e083},
	{0x0000000000000000, 0xab3a327fe8000000, 0x00235c932cc165d7},
	{0x0000000000000000, 0xc7427d1000000000, 0x002d0768928f97c1},
	{0x0000000000000000, 0x624ea00000000000, 0x00216ecc413d180c},
	{0x0000000000000000, 0x4a40000000000000, 0x000e397b871507be},
	{0x0000000000000000, 0x8000000000000000, 0x0004e5801bb19116},
	{0x0000000000000000, 0x0000000000000000, 0x002957cd9384c100},
	{0x000000000e5d3ef3, 0x0000000000000000, 0x0000000000000000},
	{0x03582cef55a9561c, 0x0000000000000000, 0x0000000000000000},
	{0xc42c684dd152c07c, 0x0000000000c75809, 0x0000000000000000},
	{0xb85b654f8af5c5ce, 0x002e69d2818df38b, 0x0000000000000000},
	{0x64d1001550bab150, 0xcbfdc0bfb7b636cc, 0x00000000000ace73},
	{0xe07e68df494fe4e6, 0x5cc2c933d96e184b, 0x0002841d68939108},
	{0x4af7b3a98e4782ee, 0xaf101564f98e0d5a, 0x00225ba69cd94abd},
	{0x9b8ddc75f98c79c2, 0xd5238971ee216e91, 0x0032979c226db0bd},
	{0xbf709579a238b378, 0xfadeda7e73b029e3, 0x00198a0e9fc7323b},
	{0xc980a1794cc0e220, 0x6d22f8e9b12dd13b, 0x002e610538899a5e},
	{0x971256b58bf0bb84, 0x30d28a96cc810997, 0x002009c733c33885},
	{0x78e1ea7426d5ff7e, 0x4133c0338693b838, 0x002d7410bcf8fd1e},
	{0x11d2554269ac1e64, 0x54aba88265315852, 0x0039f8e2b4f405e0},
	{0x8f94a3ecf72e83cf, 0xdeba22e2fb2af43d, 0x0038d0e6c91981e8},
	{0x82dd6566a18eccef, 0x2bf5185101d8347d, 0x0005f05cf1eca1c2},
	{0x58fc149cf61a60e7, 0xb157db9d1a14c8d0, 0x0037185bc69324ba},
	{0x7b67fa6433337795, 0xa4ce715d384c069b, 0x0022426f3a293e66},
	{0xc3a6b9ebcfb42a76, 0x9380f1adcc2fe2a1, 0x00099a51bcf7b65b},
	{0xbf6d8a0ec4abeda5, 0x2f4f0127663ac386, 0x0039acce43f9b5a8},
	{0xe325966170d59b95, 0x1d2c21140b75b9c2, 0x003a23da136a601f},
	{0x9447fe6348a4dc37, 0x56ccd7ac8e2a1580, 0x0018c478ee494530},
	{0xb832093f29eb3e02, 0x24bf6072c67d3ff0, 0x00110f3f93ad916c},
	{0x99f445e12a2b8b81, 0x7ae4d5b3c5b64792, 0x002869765c458b59},
	{0xad4f129ed6b167ad, 0x8d55cc27ac259687, 0x0010312a531b45e1},
	{0x33b95f05308b2446, 0xa7a186237b56899c, 0x000659988a65c52f},
	{0xa0495d5d89e3326b, 0x529d231810781739, 0x0017b1fae7e4ab5a},
	{0x9cb81e18329e027e, 0xa5f6929702eecd20, 0x00353dc154952ecd},
	{0xf5f7f5910aa1bc17, 0x8c2ff53e5798715a, 0x0022bbfd43e3ef11},
	{0xce781e07dfd27a1c, 0xbd3404f270d9e2d7, 0x003511eab6813afc},
	{0xa9045d5de10d0ca5, 0xe5c167661f662c18, 0x001e16bbb4303bb9},
	{0x3f037757bef61ffb, 0x58420466d4952382, 0x000b3aedd4e87877},
	{0xbff6d61c3519a9fd, 0x705364a40ee47a4f, 0x0036205368307a5e},
	{0x12271d83cf4e8da4, 0x278911623dba4b4e, 0x000b4983a1414efe},
	{0xff5bd179c8f0aa41, 0x410a96214a9189a7, 0x000f34b1a054eaa8},
	{0x87dc709120eb27ac, 0x56acab1d5d885601, 0x0013c56cf15d544a},
	{0x1ab683940afdc4ab, 0xf33ddba3ab18bdc1, 0x0015badb7b3497b2},
	{0x4969e9a7e1ea5b9c, 0xa832c59f2d0c8132, 0x000c3ec2ff68c8c3},
	{0xd26d625af2104446, 0xa11294d82d1d407d, 0x001865a08be144ce},
	{0x701b208600312f37, 0x05e3750ee0131382, 0x00347310c3b73894},
	{0xda512f9ebb2895e0, 0x52f4edc7d9b29d45, 0x002aa8d2b90bc374},
	{0x4a3230a2a5948bf1, 0x5d04d178a56f2914, 0x0002bd28ab522399},
	{0x58612e43e4e159f2, 0x9dfd55e019b835f2, 0x00131fde92c91492},
	{0x291931e4a852d19d, 0x347fc18aa8b8c9dc, 0x002ed152d4d81dda},
	{0x97b6c4f292a9849e, 0x31037ed0fb314015, 0x0032518dc6eb33e2},
	{0x9920b343ec07131a, 0x35ac5b9a63856d0c, 0x0036c32bee4dc501},
	{0x4bb535e601fed9a4, 0xb01770ecc8ea97d0, 0x00121b6d278bf725},
	{0x6b5a6d0aac1114e8, 0xffd9c4a5708aaa2b, 0x00209696cd451212},
	{0x681ddddd860f1000, 0x41a0336fca22ae3c, 0x001014edc0a81734},
	{0x1638e98782a00000, 0x1d6bcc8419d12e41, 0x002722fba2dea202},
	{0x9ee4615240000000, 0x88caf9dde1c5d797, 0x0033d5f39de33632},
	{0xb505668000000000, 0x9bab7dd9bef1db30, 0x0034e6df88b0f1a0},
	{0x6be1000000000000, 0x354c6bacebf992b5, 0x002932acfd26e600},
	{0x8a00000000000000, 0xed5eeb24fec2e779, 0x00090e8719e4d6d7},
	{0x0000000000000000, 0xe0835d9e0c90eae4, 0x003547e193200c97},
	{0x0000000000000000, 0x65d7ab3a327fe800, 0x00077647de0b2cc1},
	{0x0000000000000000, 0x97c1c7427d100000, 0x00029a125020928f},
	{0x0000000000000000, 0x180c624ea0000000, 0x00079578f600413d},
	{0x0000000000000000, 0x07be4a4000000000, 0x00000f3086c58715},
	{0x0000000000000000, 0x9116800000000000, 0x002dfd90f8061bb1},
	{0x0000000000000000, 0xc100000000000000, 0x00016c13671b9384},
	{0x0000000000000000, 0x0000000000000000, 0x00066bac18bdda4a},
	{0x0000000000000000, 0x0000000000000000, 0x002c341a2cc26400},
	{0x0000000000000e5e, 0x0000000000000000, 0x0000000000000000},
	{0x000003582cef55aa, 0x0000000000000000, 0x0000000000000000},
	{0x5809c42c684dd153, 0x00000000000000c7, 0x0000000000000000},
	{0xf38bb85b654f8af6, 0x0000002e69d2818d, 0x0000000000000000},
	{0x36cc64d1001550bb, 0xce73cbfdc0bfb7b6, 0x000000000000000a},
	{0x184be07e68df4950, 0x91085cc2c933d96e, 0x00000002841d6893},
	{0x0d5a4af7b3a98e48, 0x4abdaf101564f98e, 0x0006d8e21fb69cd9},
	{0x6e919b8ddc75f98d, 0xb0bdd5238971ee21, 0x002a849086b4226d},
	{0x29e3bf709579a239, 0x323bfadeda7e73b0, 0x0029f0da20e29fc7},
	{0xd13bc980a1794cc1, 0x9a5e6d22f8e9b12d, 0x0034c3d9d87b3889},
	{0x0997971256b58bf1, 0x388530d28a96cc81, 0x001cb088f3f733c3},
	{0xb83878e1ea7426d6, 0xfd1e4133c0338693, 0x00398e66304ebcf8},
	{0x585211d2554269ad, 0x05e054aba8826531, 0x00125529313ab4f4},
	{0xf43d8f94a3ecf72f, 0x81e8deba22e2fb2a, 0x000dab336aeec919},
	{0x347d82dd6566a18f, 0xa1c22bf5185101d8, 0x003798ba44f6f1ec},
	{0xc8d058fc149cf61b, 0x24bab157db9d1a14, 0x00397f11ec85c693},
	{0x069b7b67fa643334, 0x3e66a4ce715d384c, 0x001f25a6ecab3a29},
	{0xe2a1c3a6b9ebcfb5, 0xb65b9380f1adcc2f, 0x0027ddef9a15bcf7},
	{0xc386bf6d8a0ec4ac, 0xb5a82f4f0127663a, 0x00050fb1eb2643f9},
	{0xb9c2e325966170d6, 0x601f1d2c21140b75, 0x0008e8cda2b8136a},
	{0x15809447fe6348a5, 0x453056ccd7ac8e2a, 0x002adbc67176ee49},
	{0x3ff0b832093f29ec, 0x916c24bf6072c67d, 0x001bb0d4130b93ad},
	{0x479299f445e12a2c, 0x8b597ae4d5b3c5b6, 0x0002b208f9745c45},
	{0x9687ad4f129ed6b2, 0x45e18d55cc27ac25, 0x001b179f59c2531b},
	{0x899c33b95f05308c, 0xc52fa7a186237b56, 0x002d3ea69d168a65},
	{0x1739a0495d5d89e4, 0xab5a529d23181078, 0x00053f867edee7e4},
	{0xcd209cb81e18329f, 0x2ecda5f6929702ee, 0x0033e63916075495},
	{0x715af5f7f5910aa2, 0xef118c2ff53e5798, 0x0001b4ed0c4543e3},
	{0xe2d7ce781e07dfd3, 0x3afcbd3404f270d9, 0x0010208706c8b681},
	{0x2c18a9045d5de10e, 0x3bb9e5c167661f66, 0x002ebb6bf257b430},
	{0x23823f037757bef7, 0x787758420466d495, 0x00146b8eb6f5d4e8},
	{0x7a4fbff6d61c351a, 0x7a5e705364a40ee4, 0x00393cb5a19b6830},
	{0x4b4e12271d83cf4f, 0x4efe278911623dba, 0x00242efa7993a141},
	{0x89a7ff5bd179c8f1, 0xeaa8410a96214a91, 0x00225f6d8bbba054},
	{0x560187dc709120ec, 0x544a56acab1d5d88, 0x002baf6611acf15d},
	{0xbdc11ab683940afe, 0x97b2f33ddba3ab18, 0x002844322b057b34},
	{0x81324969e9a7e1eb, 0xc8c3a832c59f2d0c, 0x000146b58fd0ff68},
	{0x407dd26d625af211, 0x44cea11294d82d1d, 0x0030a93bb4d68be1},
	{0x1382701b20860032, 0x389405e3750ee013, 0x0031f3f65abec3b7},
	{0x9d45da512f9ebb29, 0xc37452f4edc7d9b2, 0x002c6a737cb0b90b},
	{0x29144a3230a2a595, 0x23995d04d178a56f, 0x002925807922ab52},
	{0x35f258612e43e4e2, 0x14929dfd55e019b8, 0x0008127258cc92c9},
	{0xc9dc291931e4a853, 0x1dda347fc18aa8b8, 0x002fa1861086d4d8},
	{0x401597b6c4f292aa, 0x33e231037ed0fb31, 0x001f64943cd5c6eb},
	{0x6d0c9920b343ec08, 0xc50135ac5b9a6385, 0x0031c61a8d67ee4d},
	{0x97d04bb535e601ff, 0xf725b01770ecc8ea, 0x001832c34939278b},
	{0xaa2b6b5a6d0aac12, 0x1212ffd9c4a5708a, 0x000d4eac255ccd45},
	{0xae3c681ddddd8610, 0x173441a0336fca22, 0x00159b6ba0afc0a8},
	{0x2e411638e98782a0, 0xa2021d6bcc8419d1, 0x0028ebab507ba2de},
	{0xd7979ee461524000, 0x363288caf9dde1c5, 0x001cc94ad7c79de3},
	{0xdb30b50566800000, 0xf1a09bab7dd9bef1, 0x002e7a15dac188b0},
	{0x92b56be100000000, 0xe600354c6bacebf9, 0x002d0f85b7fcfd26},
	{0xe7798a0000000000, 0xd6d7ed5eeb24fec2, 0x003ae74fe02919e4},
	{0xeae4000000000000, 0x0c97e0835d9e0c90, 0x000991d1bf9b9320},
	{0xe800000000000000, 0x2cc165d7ab3a327f, 0x002438f9a645de0b},
	{0x0000000000000000, 0x928f97c1c7427d10, 0x0010446b473e5020},
	{0x0000000000000000, 0x413d180c624ea000, 0x000e8224e098f600},
	{0x0000000000000000, 0x871507be4a400000, 0x00239d2ebd4c86c5},
	{0x0000000000000000, 0x1bb1911680000000, 0x0011d154fb4cf806},
	{0x0000000000000000, 0x9384c10000000000, 0x0011ebb357c3671b},
	{0x0000000000000000, 0xda4a000000000000, 0x002d7ee990f218bd},
	{0x0000000000000000, 0x6400000000000000, 0x00385e15ab0a2cc2},
	{0x0000000000000000, 0x0000000000000000, 0x00025e77c14d8ae8},
	{0x0000000000000000, 0x0000000000000000, 0x00120de6372b1000},
	{0x0000000003582cf0, 0x0000000000000000, 0x0000000000000000},
	{0x00c75809c42c684e, 0x0000000000000000, 0x0000000000000000},
	{0x818df38bb85b6550, 0x00000000002e69d2, 0x0000000000000000},
	{0xb7b636cc64d10016, 0x000ace73cbfdc0bf, 0x0000000000000000},
	{0xd96e184be07e68e0, 0x689391085cc2c933, 0x000000000002841d},
	{0xf98e0d5a4af7b3aa, 0x9cd94abdaf101564, 0x000095f83d0a1fb6},
	{0xee216e919b8ddc76, 0x226db0bdd5238971, 0x00025b6e270686b4},
	{0x73b029e3bf70957a, 0x9fc7323bfadeda7e, 0x000184fdb29620e2},
	{0xb12dd13bc980a17a, 0x38899a5e6d22f8e9, 0x0022f45a7919d87b},
	{0xcc810997971256b6, 0x33c3388530d28a96, 0x0006048504f8f3f7},
	{0x8693b83878e1ea75, 0xbcf8fd1e4133c033, 0x0039f6c12c24304e},
	{0x6531585211d25543, 0xb4f405e054aba882, 0x00086d03c309313a},
	{0xfb2af43d8f94a3ed, 0xc91981e8deba22e2, 0x000223e765dd6aee},
	{0x01d8347d82dd6567, 0xf1eca1c22bf51851, 0x00338d86125e44f6},
	{0x1a14c8d058fc149d, 0xc69324bab157db9d, 0x0015f2e4c8b9ec85},
	{0x384c069b7b67fa65, 0x3a293e66a4ce715d, 0x002b49edd1deecab},
	{0xcc2fe2a1c3a6b9ec, 0xbcf7b65b9380f1ad, 0x0033e755bc279a15},
	{0x663ac386bf6d8a0f, 0x43f9b5a82f4f0127, 0x00093874f335eb26},
	{0x0b75b9c2e3259662, 0x136a601f1d2c2114, 0x000c8dcbd23ba2b8},
	{0x8e2a15809447fe64, 0xee49453056ccd7ac, 0x000de28f5d9a7176},
	{0xc67d3ff0b8320940, 0x93ad916c24bf6072, 0x0023f58887fe130b},
	{0xc5b6479299f445e2, 0x5c458b597ae4d5b3, 0x003b28039b06f974},
	{0xac259687ad4f129f, 0x531b45e18d55cc27, 0x00019fb5621959c2},
	{0x7b56899c33b95f06, 0x8a65c52fa7a18623, 0x0005e703c8e09d16},
	{0x10781739a0495d5e, 0xe7e4ab5a529d2318, 0x00344c03ed687ede},
	{0x02eecd209cb81e19, 0x54952ecda5f69297, 0x0018546c25a51607},
	{0x5798715af5f7f592, 0x43e3ef118c2ff53e, 0x00266fe534490c45},
	{0x70d9e2d7ce781e08, 0xb6813afcbd3404f2, 0x001101fefbff06c8},
	{0x1f662c18a9045d5e, 0xb4303bb9e5c16766, 0x003b60c39227f257},
	{0xd49523823f037758, 0xd4e8787758420466, 0x00094d018482b6f5},
	{0x0ee47a4fbff6d61d, 0x68307a5e705364a4, 0x001e6f33dc51a19b},
	{0x3dba4b4e12271d84, 0xa1414efe27891162, 0x0013019a72047993},
	{0x4a9189a7ff5bd17a, 0xa054eaa8410a9621, 0x00010ab9b0e78bbb},
	{0x5d88560187dc7092, 0xf15d544a56acab1d, 0x0035e935011411ac},
	{0xab18bdc11ab68395, 0x7b3497b2f33ddba3, 0x0004ac35539c2b05},
	{0x2d0c81324969e9a8, 0xff68c8c3a832c59f, 0x00245c575ea38fd0},
	{0x2d1d407dd26d625b, 0x8be144cea11294d8, 0x0026150abe11b4d6},
	{0xe0131382701b2087, 0xc3b7389405e3750e, 0x00041f6233fe5abe},
	{0xd9b29d45da512f9f, 0xb90bc37452f4edc7, 0x003b38b541777cb0},
	{0xa56f29144a3230a3, 0xab5223995d04d178, 0x001bd1fc05587922},
	{0x19b835f258612e44, 0x92c914929dfd55e0, 0x00149969abec58cc},
	{0xa8b8c9dc291931e5, 0xd4d81dda347fc18a, 0x0037075f0ef61086},
	{0xfb31401597b6c4f3, 0xc6eb33e231037ed0, 0x00394a972d343cd5},
	{0x63856d0c9920b344, 0xee4dc50135ac5b9a, 0x000c299b15728d67},
	{0xc8ea97d04bb535e7, 0x278bf725b01770ec, 0x001aabda68054939},
	{0x708aaa2b6b5a6d0b, 0xcd451212ffd9c4a5, 0x00013b126446255c},
	{0xca22ae3c681dddde, 0xc0a8173441a0336f, 0x00105506369da0af},
	{0x19d12e411638e988, 0xa2dea2021d6bcc84, 0x0024b3578beb507b},
	{0xe1c5d7979ee46153, 0x9de3363288caf9dd, 0x0036c9d4966ad7c7},
	{0xbef1db30b5056680, 0x88b0f1a09bab7dd9, 0x0018e0551dbbdac1},
	{0xebf992b56be10000, 0xfd26e600354c6bac, 0x002bbd006d89b7fc},
	{0xfec2e7798a000000, 0x19e4d6d7ed5eeb24, 0x002010aca7b5e029},
	{0x0c90eae400000000, 0x93200c97e0835d9e, 0x002a58a1d491bf9b},
	{0x327fe80000000000, 0xde0b2cc165d7ab3a, 0x0021ef491fafa645},
	{0x7d10000000000000, 0x5020928f97c1c742, 0x0028e586b967473e},
	{0xa000000000000000, 0xf600413d180c624e, 0x00180bddb62ae098},
	{0x0000000000000000, 0x86c5871507be4a40, 0x0009fbb031eebd4c},
	{0x0000000000000000, 0xf8061bb191168000, 0x003795fae476fb4c},
	{0x0000000000000000, 0x671b9384c1000000, 0x001bb3dbcbc157c3},
	{0x0000000000000000, 0x18bdda4a00000000, 0x002d0421638f90f2},
	{0x0000000000000000, 0x2cc2640000000000, 0x00216d3645b5ab0a},
	{0x0000000000000000, 0x8ae8000000000000, 0x002a4c439565c14d},
	{0x0000000000000000, 0x1000000000000000, 0x0017b1137230372b},
	{0x0000000000000000, 0x0000000000000000, 0x000b39de281f9aa0},
	{0x0000000000000000, 0x0000000000000000, 0x00075bbed4424000},
	{0x0000000000000359, 0x0000000000000000, 0x0000000000000000},
	{0x000000c75809c42d, 0x0000000000000000, 0x0000000000000000},
	{0x69d2818df38bb85c, 0x000000000000002e, 0x0000000000000000},
	{0xc0bfb7b636cc64d2, 0x0000000ace73cbfd, 0x0000000000000000},
	{0xc933d96e184be07f, 0x841d689391085cc2, 0x0000000000000002},
	{0x1564f98e0d5a4af8, 0x1fb69cd94abdaf10, 0x0000000095f83d0a},
	{0x8971ee216e919b8e, 0x86b4226db0bdd523, 0x0039cc29ed902706},
	{0xda7e73b029e3bf71, 0x20e29fc7323bfade, 0x00219027b9c3b296},
	{0xf8e9b12dd13bc981, 0xd87b38899a5e6d22, 0x002d907c72ce7919},
	{0x8a96cc8109979713, 0xf3f733c3388530d2, 0x003012c0b9ff04f8},
	{0xc0338693b83878e2, 0x304ebcf8fd1e4133, 0x003b605797e92c24},
	{0xa8826531585211d3, 0x313ab4f405e054ab, 0x00364a28e1bbc309},
	{0x22e2fb2af43d8f95, 0x6aeec91981e8deba, 0x002bb77a99c565dd},
	{0x185101d8347d82de, 0x44f6f1eca1c22bf5, 0x002df5d51138125e},
	{0xdb9d1a14c8d058fd, 0xec85c69324bab157, 0x000d0e230518c8b9},
	{0x715d384c069b7b68, 0xecab3a293e66a4ce, 0x0005c53f27bdd1de},
	{0xf1adcc2fe2a1c3a7, 0x9a15bcf7b65b9380, 0x002c3224683fbc27},
	{0x0127663ac386bf6e, 0xeb2643f9b5a82f4f, 0x000ed6e69accf335},
	{0x21140b75b9c2e326, 0xa2b8136a601f1d2c, 0x002fb7f97389d23b},
	{0xd7ac8e2a15809448, 0x7176ee49453056cc, 0x002016c8f6435d9a},
	{0x6072c67d3ff0b833, 0x130b93ad916c24bf, 0x000faf4e0eea87fe},
	{0xd5b3c5b6479299f5, 0xf9745c458b597ae4, 0x00369b266c899b06},
	{0xcc27ac259687ad50, 0x59c2531b45e18d55, 0x002009ee72036219},
	{0x86237b56899c33ba, 0x9d168a65c52fa7a1, 0x0000c9a78657c8e0},
	{0x231810781739a04a, 0x7edee7e4ab5a529d, 0x0014705fdfd3ed68},
	{0x929702eecd209cb9, 0x160754952ecda5f6, 0x003157db1f6e25a5},
	{0xf53e5798715af5f8, 0x0c4543e3ef118c2f, 0x0019a5469b173449},
	{0x04f270d9e2d7ce79, 0x06c8b6813afcbd34, 0x000567149906fbff},
	{0x67661f662c18a905, 0xf257b4303bb9e5c1, 0x0001a04ce0d19227},
	{0x0466d49523823f04, 0xb6f5d4e878775842, 0x0030cb667e358482},
	{0x64a40ee47a4fbff7, 0xa19b68307a5e7053, 0x000c75e6115bdc51},
	{0x11623dba4b4e1228, 0x7993a1414efe2789, 0x00156351d5327204},
	{0x96214a9189a7ff5c, 0x8bbba054eaa8410a, 0x000bbec76cadb0e7},
	{0xab1d5d88560187dd, 0x11acf15d544a56ac, 0x002870cad6150114},
	{0xdba3ab18bdc11ab7, 0x2b057b3497b2f33d, 0x0004e3f2d8ff539c},
	{0xc59f2d0c8132496a, 0x8fd0ff68c8c3a832, 0x003b72a6c1d55ea3},
	{0x94d82d1d407dd26e, 0xb4d68be144cea112, 0x0031add2fd36be11},
	{0x750ee0131382701c, 0x5abec3b7389405e3, 0x000cbee79d4e33fe},
	{0xedc7d9b29d45da52, 0x7cb0b90bc37452f4, 0x001235449af34177},
	{0xd178a56f29144a33, 0x7922ab5223995d04, 0x0038a32bdd460558},
	{0x55e019b835f25862, 0x58cc92c914929dfd, 0x00104d91db5babec},
	{0xc18aa8b8c9dc291a, 0x1086d4d81dda347f, 0x0015580d3a4d0ef6},
	{0x7ed0fb31401597b7, 0x3cd5c6eb33e23103, 0x0011f10a83a32d34},
	{0x5b9a63856d0c9921, 0x8d67ee4dc50135ac, 0x0025fe14fd1d1572},
	{0x70ecc8ea97d04bb6, 0x4939278bf725b017, 0x0006c587406c6805},
	{0xc4a5708aaa2b6b5b, 0x255ccd451212ffd9, 0x00193d8555226446},
	{0x336fca22ae3c681e, 0xa0afc0a8173441a0, 0x000801e79fee369d},
	{0xcc8419d12e411639, 0x507ba2dea2021d6b, 0x0037769f25f38beb},
	{0xf9dde1c5d7979ee5, 0xd7c79de3363288ca, 0x0038b4819382966a},
	{0x7dd9bef1db30b506, 0xdac188b0f1a09bab, 0x001e67a026b11dbb},
	{0x6bacebf992b56be1, 0xb7fcfd26e600354c, 0x00293cf1efe26d89},
	{0xeb24fec2e7798a00, 0xe02919e4d6d7ed5e, 0x0034b8274caea7b5},
	{0x5d9e0c90eae40000, 0xbf9b93200c97e083, 0x0028aa419e67d491},
	{0xab3a327fe8000000, 0xa645de0b2cc165d7, 0x00182cc564911faf},
	{0xc7427d1000000000, 0x473e5020928f97c1, 0x0021ca0d0dfcb967},
	{0x624ea00000000000, 0xe098f600413d180c, 0x003ad789bfd7b62a},
	{0x4a40000000000000, 0xbd4c86c5871507be, 0x00323969ad4c31ee},
	{0x8000000000000000, 0xfb4cf8061bb19116, 0x0011bd942ea4e476},
	{0x0000000000000000, 0x57c3671b9384c100, 0x0026645af7c3cbc1},
	{0x0000000000000000, 0x90f218bdda4a0000, 0x002d9658a04f638f},
	{0x0000000000000000, 0xab0a2cc264000000, 0x00127bf29f5445b5},
	{0x0000000000000000, 0xc14d8ae800000000, 0x00139f054cb59565},
	{0x0000000000000000, 0x372b100000000000, 0x002a47399aa57230},
	{0x0000000000000000, 0x9aa0000000000000, 0x0026855a59d2281f},
	{0x0000000000000000, 0x4000000000000000, 0x0030ee513f4ed442},
	{0x0000000000000000, 0x0000000000000000, 0x00125a952816c680},
	{0x0000000000c7580a, 0x0000000000000000, 0x0000000000000000},
	{0x002e69d2818df38c, 0x0000000000000000, 0x0000000000000000},
	{0xcbfdc0bfb7b636cd, 0x00000000000ace73, 0x0000000000000000},
	{0x5cc2c933d96e184c, 0x0002841d68939108, 0x0000000000000000},
	{0xaf101564f98e0d5b, 0x3d0a1fb69cd94abd, 0x00000000000095f8},
	{0xd5238971ee216e92, 0x270686b4226db0bd, 0x000022eae3bbed90},
	{0xfadeda7e73b029e4, 0xb29620e29fc7323b, 0x002bc1616b29b9c3},
	{0x6d22f8e9b12dd13c, 0x7919d87b38899a5e, 0x0009b70ac67672ce},
	{0x30d28a96cc810998, 0x04f8f3f733c33885, 0x001b94141cb4b9ff},
	{0x4133c0338693b839, 0x2c24304ebcf8fd1e, 0x002a1424445197e9},
	{0x54aba88265315853, 0xc309313ab4f405e0, 0x0012ff58814ee1bb},
	{0xdeba22e2fb2af43e, 0x65dd6aeec91981e8, 0x00125db84f0499c5},
	{0x2bf5185101d8347e, 0x125e44f6f1eca1c2, 0x00011238a08f1138},
	{0xb157db9d1a14c8d1, 0xc8b9ec85c69324ba, 0x00214f792b8d0518},
	{0xa4ce715d384c069c, 0xd1deecab3a293e66, 0x0020d5710d3127bd},
	{0x9380f1adcc2fe2a2, 0xbc279a15bcf7b65b, 0x000b71e170ea683f},
	{0x2f4f0127663ac387, 0xf335eb2643f9b5a8, 0x003693c25cf69acc},
	{0x1d2c21140b75b9c3, 0xd23ba2b8136a601f, 0x00396ac8f17d7389},
	{0x56ccd7ac8e2a1581, 0x5d9a7176ee494530, 0x001d357b4186f643},
	{0x24bf6072c67d3ff1, 0x87fe130b93ad916c, 0x001f6c5c296a0eea},
	{0x7ae4d5b3c5b64793, 0x9b06f9745c458b59, 0x0018b190b6326c89},
	{0x8d55cc27ac259688, 0x621959c2531b45e1, 0x000bbd80cb267203},
	{0xa7a186237b56899d, 0xc8e09d168a65c52f, 0x0008f385b39b8657},
	{0x529d23181078173a, 0xed687edee7e4ab5a, 0x002435ffc41bdfd3},
	{0xa5f6929702eecd21, 0x25a5160754952ecd, 0x00067d707bd11f6e},
	{0x8c2ff53e5798715b, 0x34490c4543e3ef11, 0x0030b0b04dbc9b17},
	{0xbd3404f270d9e2d8, 0xfbff06c8b6813afc, 0x002be9c877629906},
	{0xe5c167661f662c19, 0x9227f257b4303bb9, 0x0016f4e27706e0d1},
	{0x58420466d4952383, 0x8482b6f5d4e87877, 0x000199f8f8267e35},
	{0x705364a40ee47a50, 0xdc51a19b68307a5e, 0x0008f65ca152115b},
	{0x278911623dba4b4f, 0x72047993a1414efe, 0x00131b9f5ebbd532},
	{0x410a96214a9189a8, 0xb0e78bbba054eaa8, 0x002bbbb516d96cad},
	{0x56acab1d5d885602, 0x011411acf15d544a, 0x00329f82f802d615},
	{0xf33ddba3ab18bdc2, 0x539c2b057b3497b2, 0x0000a90ddcced8ff},
	{0xa832c59f2d0c8133, 0x5ea38fd0ff68c8c3, 0x003029149916c1d5},
	{0xa11294d82d1d407e, 0xbe11b4d68be144ce, 0x00054c6ebc1cfd36},
	{0x05e3750ee0131383, 0x33fe5abec3b73894, 0x0006bfe2d0899d4e},
	{0x52f4edc7d9b29d46, 0x41777cb0b90bc374, 0x00200a763d269af3},
	{0x5d04d178a56f2915, 0x05587922ab522399, 0x0008fd0dbcafdd46},
	{0x9dfd55e019b835f3, 0xabec58cc92c91492, 0x0028f25503f3db5b},
	{0x347fc18aa8b8c9dd, 0x0ef61086d4d81dda, 0x0038c70080db3a4d},
	{0x31037ed0fb314016, 0x2d343cd5c6eb33e2, 0x00330afdd0ce83a3},
	{0x35ac5b9a63856d0d, 0x15728d67ee4dc501, 0x00301534bf72fd1d},
	{0xb01770ecc8ea97d1, 0x68054939278bf725, 0x001ac5dcb329406c},
	{0xffd9c4a5708aaa2c, 0x6446255ccd451212, 0x00099aca4a055522},
	{0x41a0336fca22ae3d, 0x369da0afc0a81734, 0x00013dd858f99fee},
	{0x1d6bcc8419d12e42, 0x8beb507ba2dea202, 0x003a1ecb141525f3},
	{0x88caf9dde1c5d798, 0x966ad7c79de33632, 0x0004ec88a5b39382},
	{0x9bab7dd9bef1db31, 0x1dbbdac188b0f1a0, 0x0029cf93879e26b1},
	{0x354c6bacebf992b6, 0x6d89b7fcfd26e600, 0x0024d28ae2edefe2},
	{0xed5eeb24fec2e77a, 0xa7b5e02919e4d6d7, 0x003766273cbd4cae},
	{0xe0835d9e0c90eae4, 0xd491bf9b93200c97, 0x002c1321c0399e67},
	{0x65d7ab3a327fe800, 0x1fafa645de0b2cc1, 0x000d6a58af716491},
	{0x97c1c7427d100000, 0xb967473e5020928f, 0x001a66bd6af50dfc},
	{0x180c624ea0000000, 0xb62ae098f600413d, 0x00390e6505cbbfd7},
	{0x07be4a4000000000, 0x31eebd4c86c58715, 0x002f7068e41fad4c},
	{0x9116800000000000, 0xe476fb4cf8061bb1, 0x00076017ce162ea4},
	{0xc100000000000000, 0xcbc157c3671b9384, 0x00052a2990a6f7c3},
	{0x0000000000000000, 0x638f90f218bdda4a, 0x0026e00eeb3ea04f},
	{0x0000000000000000, 0x45b5ab0a2cc26400, 0x000e94d026329f54},
	{0x0000000000000000, 0x9565c14d8ae80000, 0x000bc954367b4cb5},
	{0x0000000000000000, 0x7230372b10000000, 0x001cb53b49319aa5},
	{0x0000000000000000, 0x281f9aa000000000, 0x000b8ca24cde59d2},
	{0x0000000000000000, 0xd442400000000000, 0x0033c524ea8b3f4e},
	{0x0000000000000000, 0xc680000000000000, 0x00206bc9204b2816},
	{0x0000000000000000, 0x0000000000000000, 0x00117faeab14e1a1},
	{0x0000000000000000, 0x0000000000000000, 0x0004dca04fe30a00},
	{0x00000000000000c8, 0x0000000000000000, 0x0000000000000000},
	{0x0000002e69d2818e, 0x0000000000000000, 0x0000000000000000},
	{0xce73cbfdc0bfb7b7, 0x000000000000000a, 0x0000000000000000},
	{0x91085cc2c933d96f, 0x00000002841d6893, 0x0000000000000000},
	{0x4abdaf101564f98f, 0x95f83d0a1fb69cd9, 0x0000000000000000},
	{0xb0bdd5238971ee22, 0xed90270686b4226d, 0x0000000022eae3bb},
	{0x323bfadeda7e73b1, 0xb9c3b29620e29fc7, 0x0036b082a67f6b29},
	{0x9a5e6d22f8e9b12e, 0x72ce7919d87b3889, 0x001daabd9f78c676},
	{0x388530d28a96cc82, 0xb9ff04f8f3f733c3, 0x001c1ec3fc501cb4},
	{0xfd1e4133c0338694, 0x97e92c24304ebcf8, 0x0012a70e223c4451},
	{0x05e054aba8826532, 0xe1bbc309313ab4f4, 0x000e082f7500814e},
	{0x81e8deba22e2fb2b, 0x99c565dd6aeec919, 0x00001e1b5d824f04},
	{0xa1c22bf5185101d9, 0x1138125e44f6f1ec, 0x001e57006a8ea08f},
	{0x24bab157db9d1a15, 0x0518c8b9ec85c693, 0x0021353e19b92b8d},
	{0x3e66a4ce715d384d, 0x27bdd1deecab3a29, 0x002b1cffcf5f0d31},
	{0xb65b9380f1adcc30, 0x683fbc279a15bcf7, 0x00162183442370ea},
	{0xb5a82f4f0127663b, 0x9accf335eb2643f9, 0x00084073ea225cf6},
	{0x601f1d2c21140b76, 0x7389d23ba2b8136a, 0x00080033df60f17d},
	{0x453056ccd7ac8e2b, 0xf6435d9a7176ee49, 0x00169245ada54186},
	{0x916c24bf6072c67e, 0x0eea87fe130b93ad, 0x00267a05eba6296a},
	{0x8b597ae4d5b3c5b7, 0x6c899b06f9745c45, 0x0026b00377eab632},
	{0x45e18d55cc27ac26, 0x7203621959c2531b, 0x0036a5e86d1ccb26},
	{0xc52fa7a186237b57, 0x8657c8e09d168a65, 0x0006b43ac9b3b39b},
	{0xab5a529d23181079, 0xdfd3ed687edee7e4, 0x0029d70caf3dc41b},
	{0x2ecda5f6929702ef, 0x1f6e25a516075495, 0x000e618b22187bd1},
	{0xef118c2ff53e5799, 0x9b1734490c4543e3, 0x0005b356ffbe4dbc},
	{0x3afcbd3404f270da, 0x9906fbff06c8b681, 0x002c4efb648a7762},
	{0x3bb9e5c167661f67, 0xe0d19227f257b430, 0x00203d3cccc87706},
	{0x787758420466d496, 0x7e358482b6f5d4e8, 0x002eaca45ddef826},
	{0x7a5e705364a40ee5, 0x115bdc51a19b6830, 0x0033ea02160ca152},
	{0x4efe278911623dbb, 0xd53272047993a141, 0x0002f0d0eca95ebb},
	{0xeaa8410a96214a92, 0x6cadb0e78bbba054, 0x00276f3debe116d9},
	{0x544a56acab1d5d89, 0xd615011411acf15d, 0x0034685d76def802},
	{0x97b2f33ddba3ab19, 0xd8ff539c2b057b34, 0x0033e9f9c8bddcce},
	{0xc8c3a832c59f2d0d, 0xc1d55ea38fd0ff68, 0x002c34b050ac9916},
	{0x44cea11294d82d1e, 0xfd36be11b4d68be1, 0x00282fa48728bc1c},
	{0x389405e3750ee014, 0x9d4e33fe5abec3b7, 0x00097bfbfc3ad089},
	{0xc37452f4edc7d9b3, 0x9af341777cb0b90b, 0x000db19f92963d26},
	{0x23995d04d178a570, 0xdd4605587922ab52, 0x0022faef3b2fbcaf},
	{0x14929dfd55e019b9, 0xdb5babec58cc92c9, 0x000b1d59b4ad03f3},
	{0x1dda347fc18aa8b9, 0x3a4d0ef61086d4d8, 0x00284886195e80db},
	{0x33e231037ed0fb32, 0x83a32d343cd5c6eb, 0x001600d69bfdd0ce},
	{0xc50135ac5b9a6386, 0xfd1d15728d67ee4d, 0x003b18977b54bf72},
	{0xf725b01770ecc8eb, 0x406c68054939278b, 0x0013bb5d8a92b329},
	{0x1212ffd9c4a5708b, 0x55226446255ccd45, 0x002227fe0a084a05},
	{0x173441a0336fca23, 0x9fee369da0afc0a8, 0x0001ee124c3c58f9},
	{0xa2021d6bcc8419d2, 0x25f38beb507ba2de, 0x000e0cfeac3b1415},
	{0x363288caf9dde1c6, 0x9382966ad7c79de3, 0x000dc1599250a5b3},
	{0xf1a09bab7dd9bef2, 0x26b11dbbdac188b0, 0x0012c6f3b3c5879e},
	{0xe600354c6bacebfa, 0xefe26d89b7fcfd26, 0x002dfdb0e510e2ed},
	{0xd6d7ed5eeb24fec3, 0x4caea7b5e02919e4, 0x0003ee82ac7b3cbd},
	{0x0c97e0835d9e0c91, 0x9e67d491bf9b9320, 0x001cb1836879c039},
	{0x2cc165d7ab3a3280, 0x64911fafa645de0b, 0x001c58eafbd8af71},
	{0x928f97c1c7427d10, 0x0dfcb967473e5020, 0x00327373a6d36af5},
	{0x413d180c624ea000, 0xbfd7b62ae098f600, 0x0031397ba40905cb},
	{0x871507be4a400000, 0xad4c31eebd4c86c5, 0x000219ca905ae41f},
	{0x1bb1911680000000, 0x2ea4e476fb4cf806, 0x001529883fffce16},
	{0x9384c10000000000, 0xf7c3cbc157c3671b, 0x003b8f2aeeb590a6},
	{0xda4a000000000000, 0xa04f638f90f218bd, 0x002a461ec3aeeb3e},
	{0x6400000000000000, 0x9f5445b5ab0a2cc2, 0x0028b9faf83e2632},
	{0x0000000000000000, 0x4cb59565c14d8ae8, 0x000e7861af50367b},
	{0x0000000000000000, 0x9aa57230372b1000, 0x0012ad0e7bd74931},
	{0x0000000000000000, 0x59d2281f9aa00000, 0x0032200a563c4cde},
	{0x0000000000000000, 0x3f4ed44240000000, 0x000e0a2d111cea8b},
	{0x0000000000000000, 0x2816c68000000000, 0x0006bb8a006d204b},
	{0x0000000000000000, 0xe1a1000000000000, 0x0019686cdaeeab14},
	{0x0000000000000000, 0x0a00000000000000, 0x003791bd0d8e4fe3},
	{0x0000000000000000, 0x0000000000000000, 0x00212275aceb29e4},
	{0x0000000000000000, 0x0000000000000000, 0x0036c0d84e35e800},
	{0x00000000002e69d3, 0x0000000000000000, 0x0000000000000000},
	{0x000ace73cbfdc0c0, 0x0000000000000000, 0x0000000000000000},
	{0x689391085cc2c934, 0x000000000002841d, 0x0000000000000000},
	{0x9cd94abdaf101565, 0x000095f83d0a1fb6, 0x0000000000000000},
	{0x226db0bdd5238972, 0xe3bbed90270686b4, 0x00000000000022ea},
	{0x9fc7323bfadeda7f, 0x6b29b9c3b29620e2, 0x000008213f56a67f},
	{0x38899a5e6d22f8ea, 0xc67672ce7919d87b, 0x00142cc3e5b99f78},
	{0x33c3388530d28a97, 0x1cb4b9ff04f8f3f7, 0x002b37fd3c39fc50},
	{0xbcf8fd1e4133c034, 0x445197e92c24304e, 0x000d8035ffe6223c},
	{0xb4f405e054aba883, 0x814ee1bbc309313a, 0x0035950a13037500},
	{0xc91981e8deba22e3, 0x4f0499c565dd6aee, 0x0000ce0e3a6d5d82},
	{0xf1eca1c22bf51852, 0xa08f1138125e44f6, 0x001976ad94626a8e},
	{0xc69324bab157db9e, 0x2b8d0518c8b9ec85, 0x0016ea10a0e219b9},
	{0x3a293e66a4ce715e, 0x0d3127bdd1deecab, 0x0034a4a38eb9cf5f},
	{0xbcf7b65b9380f1ae, 0x70ea683fbc279a15, 0x002b432444d94423},
	{0x43f9b5a82f4f0128, 0x5cf69accf335eb26, 0x00329612981bea22},
	{0x136a601f1d2c2115, 0xf17d7389d23ba2b8, 0x00067fd6cad7df60},
	{0xee49453056ccd7ad, 0x4186f6435d9a7176, 0x003243020e3bada5},
	{0x93ad916c24bf6073, 0x296a0eea87fe130b, 0x000de51aa287eba6},
	{0x5c458b597ae4d5b4, 0xb6326c899b06f974, 0x001fa57e4d7177ea},
	{0x531b45e18d55cc28, 0xcb267203621959c2, 0x001a6b3ec3ce6d1c},
	{0x8a65c52fa7a18624, 0xb39b8657c8e09d16, 0x00300ff6283cc9b3},
	{0xe7e4ab5a529d2319, 0xc41bdfd3ed687ede, 0x000e273db7a6af3d},
	{0x54952ecda5f69298, 0x7bd11f6e25a51607, 0x0026cf2c2da12218},
	{0x43e3ef118c2ff53f, 0x4dbc9b1734490c45, 0x002584494c2affbe},
	{0xb6813afcbd3404f3, 0x77629906fbff06c8, 0x000a02f0a231648a},
	{0xb4303bb9e5c16767, 0x7706e0d19227f257, 0x000b80095e24ccc8},
	{0xd4e8787758420467, 0xf8267e358482b6f5, 0x000891726d9c5dde},
	{0x68307a5e705364a5, 0xa152115bdc51a19b, 0x0024682e3d64160c},
	{0xa1414efe27891163, 0x5ebbd53272047993, 0x00174d99262ceca9},
	{0xa054eaa8410a9622, 0x16d96cadb0e78bbb, 0x000a75b4d975ebe1},
	{0xf15d544a56acab1e, 0xf802d615011411ac, 0x001b74a9d1cb76de},
	{0x7b3497b2f33ddba4, 0xdcced8ff539c2b05, 0x002f5f6b7115c8bd},
	{0xff68c8c3a832c5a0, 0x9916c1d55ea38fd0, 0x0005126fb48050ac},
	{0x8be144cea11294d9, 0xbc1cfd36be11b4d6, 0x001de02d8ec48728},
	{0xc3b7389405e3750f, 0xd0899d4e33fe5abe, 0x002dc1fac481fc3a},
	{0xb90bc37452f4edc8, 0x3d269af341777cb0, 0x001e43b9da779296},
	{0xab5223995d04d179, 0xbcafdd4605587922, 0x001bd71528233b2f},
	{0x92c914929dfd55e1, 0x03f3db5babec58cc, 0x000833f167e7b4ad},
	{0xd4d81dda347fc18b, 0x80db3a4d0ef61086, 0x0035f2bd648e195e},
	{0xc6eb33e231037ed1, 0xd0ce83a32d343cd5, 0x002115c42a909bfd},
	{0xee4dc50135ac5b9b, 0xbf72fd1d15728d67, 0x0021ab6370e57b54},
	{0x278bf725b01770ed, 0xb329406c68054939, 0x00356e2dcc6b8a92},
	{0xcd451212ffd9c4a6, 0x4a0555226446255c, 0x001909f606e20a08},
	{0xc0a8173441a03370, 0x58f99fee369da0af, 0x0034a0fc4df64c3c},
	{0xa2dea2021d6bcc85, 0x141525f38beb507b, 0x0039587e1cf6ac3b},
	{0x9de3363288caf9de, 0xa5b39382966ad7c7, 0x00396ed7dd119250},
	{0x88b0f1a09bab7dda, 0x879e26b11dbbdac1, 0x000417587827b3c5},
	{0xfd26e600354c6bad, 0xe2edefe26d89b7fc, 0x00093e6ffeeee510},
	{0x19e4d6d7ed5eeb25, 0x3cbd4caea7b5e029, 0x00379f3d3134ac7b},
	{0x93200c97e0835d9f, 0xc0399e67d491bf9b, 0x000c4399b93b6879},
	{0xde0b2cc165d7ab3b, 0xaf7164911fafa645, 0x000dd4ffc8fafbd8},
	{0x5020928f97c1c743, 0x6af50dfcb967473e, 0x003a6fcc7b81a6d3},
	{0xf600413d180c624f, 0x05cbbfd7b62ae098, 0x001e2fd76277a409},
	{0x86c5871507be4a40, 0xe41fad4c31eebd4c, 0x001bdb252932905a},
	{0xf8061bb191168000, 0xce162ea4e476fb4c, 0x000bc5d7af283fff},
	{0x671b9384c1000000, 0x90a6f7c3cbc157c3, 0x00095f1636e0eeb5},
	{0x18bdda4a00000000, 0xeb3ea04f638f90f2, 0x00345f04edeac3ae},
	{0x2cc2640000000000, 0x26329f5445b5ab0a, 0x0036a90c45d8f83e},
	{0x8ae8000000000000, 0x367b4cb59565c14d, 0x00328466dc11af50},
	{0x1000000000000000, 0x49319aa57230372b, 0x00041e18e7247bd7},
	{0x0000000000000000, 0x4cde59d2281f9aa0, 0x00087e99e718563c},
	{0x0000000000000000, 0xea8b3f4ed4424000, 0x0005aa96fa09111c},
	{0x0000000000000000, 0x204b2816c6800000, 0x00021c6d1cf4006d},
	{0x0000000000000000, 0xab14e1a100000000, 0x0038cfa1f06cdaee},
	{0x0000000000000000, 0x4fe30a0000000000, 0x0019584699c10d8e},
	{0x0000000000000000, 0x29e4000000000000, 0x002cf2da48b7aceb},
	{0x0000000000000000, 0xe800000000000000, 0x002ac3e926904e35},
	{0x0000000000000000, 0x0000000000000000, 0x00219947569c1910},
	{0x0000000000000000, 0x0000000000000000, 0x00245828ef66a000},
	{0x000000000000002f, 0x0000000000000000, 0x0000000000000000},
	{0x0000000ace73cbfe, 0x0000000000000000, 0x0000000000000000},
	{0x841d689391085cc3, 0x0000000000000002, 0x0000000000000000},
	{0x1fb69cd94abdaf11, 0x0000000095f83d0a, 0x0000000000000000},
	{0x86b4226db0bdd524, 0x22eae3bbed902706, 0x0000000000000000},
	{0x20e29fc7323bfadf, 0xa67f6b29b9c3b296, 0x0000000008213f56},
	{0xd87b38899a5e6d23, 0x9f78c67672ce7919, 0x0007bdb34e79e5b9},
	{0xf3f733c3388530d3, 0xfc501cb4b9ff04f8, 0x001c61a628af3c39},
	{0x304ebcf8fd1e4134, 0x223c445197e92c24, 0x0028ccd5dd8dffe6},
	{0x313ab4f405e054ac, 0x7500814ee1bbc309, 0x00210fd606401303},
	{0x6aeec91981e8debb, 0x5d824f0499c565dd, 0x000eeb1fcb0c3a6d},
	{0x44f6f1eca1c22bf6, 0x6a8ea08f1138125e, 0x0002d8dc00719462},
	{0xec85c69324bab158, 0x19b92b8d0518c8b9, 0x001a71df90d8a0e2},
	{0xecab3a293e66a4cf, 0xcf5f0d3127bdd1de, 0x0032700fd2e38eb9},
	{0x9a15bcf7b65b9381, 0x442370ea683fbc27, 0x0034fb7c3d3044d9},
	{0xeb2643f9b5a82f50, 0xea225cf69accf335, 0x000b3d0d93ba981b},
	{0xa2b8136a601f1d2d, 0xdf60f17d7389d23b, 0x002b71e12bc6cad7},
	{0x7176ee49453056cd, 0xada54186f6435d9a, 0x002e48f2a2660e3b},
	{0x130b93ad916c24c0, 0xeba6296a0eea87fe, 0x0017c2fcd826a287},
	{0xf9745c458b597ae5, 0x77eab6326c899b06, 0x0008fed195524d71},
	{0x59c2531b45e18d56, 0x6d1ccb2672036219, 0x0013299cae00c3ce},
	{0x9d168a65c52fa7a2, 0xc9b3b39b8657c8e0, 0x00002d96f7d4283c},
	{0x7edee7e4ab5a529e, 0xaf3dc41bdfd3ed68, 0x0031658d9ecdb7a6},
	{0x160754952ecda5f7, 0x22187bd11f6e25a5, 0x002fe5b637922da1},
	{0x0c4543e3ef118c30, 0xffbe4dbc9b173449, 0x002208e6edcb4c2a},
	{0x06c8b6813afcbd35, 0x648a77629906fbff, 0x002f557a24e8a231},
	{0xf257b4303bb9e5c2, 0xccc87706e0d19227, 0x00362a0a83dd5e24},
	{0xb6f5d4e878775843, 0x5ddef8267e358482, 0x00338a8bc99e6d9c},
	{0xa19b68307a5e7054, 0x160ca152115bdc51, 0x0024e30dfc303d64},
	{0x7993a1414efe278a, 0xeca95ebbd5327204, 0x000b3b510fbb262c},
	{0x8bbba054eaa8410b, 0xebe116d96cadb0e7, 0x002b92f4fdb0d975},
	{0x11acf15d544a56ad, 0x76def802d6150114, 0x00292d0c89e3d1cb},
	{0x2b057b3497b2f33e, 0xc8bddcced8ff539c, 0x00350b19dc557115},
	{0x8fd0ff68c8c3a833, 0x50ac9916c1d55ea3, 0x0013e4b97799b480},
	{0xb4d68be144cea113, 0x8728bc1cfd36be11, 0x0023c98970358ec4},
	{0x5abec3b7389405e4, 0xfc3ad0899d4e33fe, 0x000c78497006c481},
	{0x7cb0b90bc37452f5, 0x92963d269af34177, 0x000193618261da77},
	{0x7922ab5223995d05, 0x3b2fbcafdd460558, 0x0016c88431192823},
	{0x58cc92c914929dfe, 0xb4ad03f3db5babec, 0x0005db761d8167e7},
	{0x1086d4d81dda3480, 0x195e80db3a4d0ef6, 0x001e21310403648e},
	{0x3cd5c6eb33e23104, 0x9bfdd0ce83a32d34, 0x0000ca39eaac2a90},
	{0x8d67ee4dc50135ad, 0x7b54bf72fd1d1572, 0x002815e8c88770e5},
	{0x4939278bf725b018, 0x8a92b329406c6805, 0x001f88e9ac8dcc6b},
	{0x255ccd451212ffda, 0x0a084a0555226446, 0x002103d9a4ee06e2},
	{0xa0afc0a8173441a1, 0x4c3c58f99fee369d, 0x00376b820db84df6},
	{0x507ba2dea2021d6c, 0xac3b141525f38beb, 0x002ae96817401cf6},
	{0xd7c79de3363288cb, 0x9250a5b39382966a, 0x000eed70dcefdd11},
	{0xdac188b0f1a09bac, 0xb3c5879e26b11dbb, 0x0037d8fb4dba7827},
	{0xb7fcfd26e600354d, 0xe510e2edefe26d89, 0x002b6a70911ffeee},
	{0xe02919e4d6d7ed5f, 0xac7b3cbd4caea7b5, 0x00077319a9a93134},
	{0xbf9b93200c97e084, 0x6879c0399e67d491, 0x002764a43e43b93b},
	{0xa645de0b2cc165d8, 0xfbd8af7164911faf, 0x000fc4a38ef9c8fa},
	{0x473e5020928f97c2, 0xa6d36af50dfcb967, 0x003a2859d79c7b81},
	{0xe098f600413d180d, 0xa40905cbbfd7b62a, 0x00246f14a6e56277},
	{0xbd4c86c5871507bf, 0x905ae41fad4c31ee, 0x00356863ce792932},
	{0xfb4cf8061bb19117, 0x3fffce162ea4e476, 0x001c35c10a31af28},
	{0x57c3671b9384c100, 0xeeb590a6f7c3cbc1, 0x000b9168d92c36e0},
	{0x90f218bdda4a0000, 0xc3aeeb3ea04f638f, 0x000a4b61bda0edea},
	{0xab0a2cc264000000, 0xf83e26329f5445b5, 0x00257823360e45d8},
	{0xc14d8ae800000000, 0xaf50367b4cb59565, 0x000352ba48d8dc11},
	{0x372b100000000000, 0x7bd749319aa57230, 0x00327dd793b0e724},
	{0x9aa0000000000000, 0x563c4cde59d2281f, 0x0029303c0adfe718},
	{0x4000000000000000, 0x111cea8b3f4ed442, 0x003421a44cdcfa09},
	{0x0000000000000000, 0x006d204b2816c680, 0x0033733cddb11cf4},
	{0x0000000000000000, 0xdaeeab14e1a10000, 0x00293cc367b9f06c},
	{0x0000000000000000, 0x0d8e4fe30a000000, 0x002b4ad66fa699c1},
	{0x0000000000000000, 0xaceb29e400000000, 0x0026ca2b719448b7},
	{0x0000000000000000, 0x4e35e80000000000, 0x0022866b14b92690},
	{0x0000000000000000, 0x1910000000000000, 0x002b1bd68d43569c},
	{0x0000000000000000, 0xa000000000000000, 0x000fadad3604ef66},
	{0x0000000000000000, 0x0000000000000000, 0x000126288f833a40},
	{0x0000000000000000, 0x0000000000000000, 0x001e8dc556768000},
	{0x00000000000ace74, 0x0000000000000000, 0x0000000000000000},
	{0x0002841d68939109, 0x0000000000000000, 0x0000000000000000},
	{0x3d0a1fb69cd94abe, 0x00000000000095f8, 0x0000000000000000},
	{0x270686b4226db0be, 0x000022eae3bbed90, 0x0000000000000000},
	{0xb29620e29fc7323c, 0x3f56a67f6b29b9c3, 0x0000000000000821},
	{0x7919d87b38899a5f, 0xe5b99f78c67672ce, 0x000001e494034e79},
	{0x04f8f3f733c33886, 0x3c39fc501cb4b9ff, 0x0000c515e93228af},
	{0x2c24304ebcf8fd1f, 0xffe6223c445197e9, 0x000badb47065dd8d},
	{0xc309313ab4f405e1, 0x13037500814ee1bb, 0x0017b7a762380640},
	{0x65dd6aeec91981e9, 0x3a6d5d824f0499c5, 0x000d0b50bbdbcb0c},
	{0x125e44f6f1eca1c3, 0x94626a8ea08f1138, 0x00332cb1650a0071},
	{0xc8b9ec85c69324bb, 0xa0e219b92b8d0518, 0x0002542655df90d8},
	{0xd1deecab3a293e67, 0x8eb9cf5f0d3127bd, 0x00340d8f77afd2e3},
	{0xbc279a15bcf7b65c, 0x44d9442370ea683f, 0x0028efea0b303d30},
	{0xf335eb2643f9b5a9, 0x981bea225cf69acc, 0x000b3b44ff2f93ba},
	{0xd23ba2b8136a6020, 0xcad7df60f17d7389, 0x000b13d069df2bc6},
	{0x5d9a7176ee494531, 0x0e3bada54186f643, 0x0033f6073ee0a266},
	{0x87fe130b93ad916d, 0xa287eba6296a0eea, 0x00344d4076d0d826},
	{0x9b06f9745c458b5a, 0x4d7177eab6326c89, 0x0030a017b9419552},
	{0x621959c2531b45e2, 0xc3ce6d1ccb267203, 0x000f45118b2eae00},
	{0xc8e09d168a65c530, 0x283cc9b3b39b8657, 0x000ade53aee2f7d4},
	{0xed687edee7e4ab5b, 0xb7a6af3dc41bdfd3, 0x0034d85a12739ecd},
	{0x25a5160754952ece, 0x2da122187bd11f6e, 0x001aeb822c623792},
	{0x34490c4543e3ef12, 0x4c2affbe4dbc9b17, 0x0016de319e4cedcb},
	{0xfbff06c8b6813afd, 0xa231648a77629906, 0x0011e9519a7c24e8},
	{0x9227f257b4303bba, 0x5e24ccc87706e0d1, 0x001ce791c67283dd},
	{0x8482b6f5d4e87878, 0x6d9c5ddef8267e35, 0x001aa9a1b3e9c99e},
	{0xdc51a19b68307a5f, 0x3d64160ca152115b, 0x00366ed345a7fc30},
	{0x72047993a1414eff, 0x262ceca95ebbd532, 0x00271cb160290fbb},
	{0xb0e78bbba054eaa9, 0xd975ebe116d96cad, 0x00098f73fecafdb0},
	{0x011411acf15d544b, 0xd1cb76def802d615, 0x002f43348aae89e3},
	{0x539c2b057b3497b3, 0x7115c8bddcced8ff, 0x0028a3502d33dc55},
	{0x5ea38fd0ff68c8c4, 0xb48050ac9916c1d5, 0x000c132328517799},
	{0xbe11b4d68be144cf, 0x8ec48728bc1cfd36, 0x0012f7d2a76f7035},
	{0x33fe5abec3b73895, 0xc481fc3ad0899d4e, 0x0019f23dc6a97006},
	{0x41777cb0b90bc375, 0xda7792963d269af3, 0x00277344a5c18261},
	{0x05587922ab52239a, 0x28233b2fbcafdd46, 0x002d0e0dad183119},
	{0xabec58cc92c91493, 0x67e7b4ad03f3db5b, 0x0005a1f16c201d81},
	{0x0ef61086d4d81ddb, 0x648e195e80db3a4d, 0x00077a37ea130403},
	{0x2d343cd5c6eb33e3, 0x2a909bfdd0ce83a3, 0x00046d6c3361eaac},
	{0x15728d67ee4dc502, 0x70e57b54bf72fd1d, 0x0016cc4a1c8cc887},
	{0x68054939278bf726, 0xcc6b8a92b329406c, 0x0020c756eeb9ac8d},
	{0x6446255ccd451213, 0x06e20a084a055522, 0x002b3b08fd91a4ee},
	{0x369da0afc0a81735, 0x4df64c3c58f99fee, 0x0021e912feea0db8},
	{0x8beb507ba2dea203, 0x1cf6ac3b141525f3, 0x00367eae69aa1740},
	{0x966ad7c79de33633, 0xdd119250a5b39382, 0x00279a33f996dcef},
	{0x1dbbdac188b0f1a1, 0x7827b3c5879e26b1, 0x002320233a934dba},
	{0x6d89b7fcfd26e601, 0xfeeee510e2edefe2, 0x00224bfaf732911f},
	{0xa7b5e02919e4d6d8, 0x3134ac7b3cbd4cae, 0x000bc6059383a9a9},
	{0xd491bf9b93200c98, 0xb93b6879c0399e67, 0x001ea7b5f1fe3e43},
	{0x1fafa645de0b2cc2, 0xc8fafbd8af716491, 0x003b3213ad8f8ef9},
	{0xb967473e50209290, 0x7b81a6d36af50dfc, 0x00216cc0da65d79c},
	{0xb62ae098f600413e, 0x6277a40905cbbfd7, 0x0017b64520baa6e5},
	{0x31eebd4c86c58716, 0x2932905ae41fad4c, 0x002b75528b5fce79},
	{0xe476fb4cf8061bb2, 0xaf283fffce162ea4, 0x00164e83ba4d0a31},
	{0xcbc157c3671b9385, 0x36e0eeb590a6f7c3, 0x0011efee5f4cd92c},
	{0x638f90f218bdda4a, 0xedeac3aeeb3ea04f, 0x0011e484789bbda0},
	{0x45b5ab0a2cc26400, 0x45d8f83e26329f54, 0x002442df0d45360e},
	{0x9565c14d8ae80000, 0xdc11af50367b4cb5, 0x00101d4e6b5648d8},
	{0x7230372b10000000, 0xe7247bd749319aa5, 0x001416f5e2a793b0},
	{0x281f9aa000000000, 0xe718563c4cde59d2, 0x0027045cd83a0adf},
	{0xd442400000000000, 0xfa09111cea8b3f4e, 0x000d8399f1884cdc},
	{0xc680000000000000, 0x1cf4006d204b2816, 0x001fbc20b734ddb1},
	{0x0000000000000000, 0xf06cdaeeab14e1a1, 0x000c4f0ee52567b9},
	{0x0000000000000000, 0x99c10d8e4fe30a00, 0x0008b585c41c6fa6},
	{0x0000000000000000, 0x48b7aceb29e40000, 0x00069eecffc17194},
	{0x0000000000000000, 0x26904e35e8000000, 0x002d0a24239514b9},
	{0x0000000000000000, 0x569c191000000000, 0x0022b5eac59e8d43},
	{0x0000000000000000, 0xef66a00000000000, 0x0024ea6c9aef3604},
	{0x0000000000000000, 0x3a40000000000000, 0x0037b21662c48f83},
	{0x0000000000000000, 0x8000000000000000, 0x002dc3ecac9b5676},
	{0x0000000000000000, 0x0000000000000000, 0x00242ad9e5028100},
	{0x000000000000000b, 0x0000000000000000, 0x0000000000000000},
	{0x00000002841d6894, 0x0000000000000000, 0x0000000000000000},
	{0x95f83d0a1fb69cda, 0x0000000000000000, 0x0000000000000000},
	{0xed90270686b4226e, 0x0000000022eae3bb, 0x0000000000000000},
	{0xb9c3b29620e29fc8, 0x08213f56a67f6b29, 0x0000000000000000},
	{0x72ce7919d87b388a, 0x4e79e5b99f78c676, 0x0000000001e49403},
	{0xb9ff04f8f3f733c4, 0x28af3c39fc501cb4, 0x0035385229dde932},
	{0x97e92c24304ebcf9, 0xdd8dffe6223c4451, 0x0033aaebf18e7065},
	{0xe1bbc309313ab4f5, 0x064013037500814e, 0x00212a077c076238},
	{0x99c565dd6aeec91a, 0xcb0c3a6d5d824f04, 0x0001b819d2a4bbdb},
	{0x1138125e44f6f1ed, 0x007194626a8ea08f, 0x00265ae6a63f650a},
	{0x0518c8b9ec85c694, 0x90d8a0e219b92b8d, 0x000ec29e1bd855df},
	{0x27bdd1deecab3a2a, 0xd2e38eb9cf5f0d31, 0x00325e98e2a177af},
	{0x683fbc279a15bcf8, 0x3d3044d9442370ea, 0x00259836edd00b30},
	{0x9accf335eb2643fa, 0x93ba981bea225cf6, 0x0030705f01f2ff2f},
	{0x7389d23ba2b8136b, 0x2bc6cad7df60f17d, 0x003893bd370669df},
	{0xf6435d9a7176ee4a, 0xa2660e3bada54186, 0x00017e472ee13ee0},
	{0x0eea87fe130b93ae, 0xd826a287eba6296a, 0x003471af542c76d0},
	{0x6c899b06f9745c46, 0x95524d7177eab632, 0x000a5a44b133b941},
	{0x7203621959c2531c, 0xae00c3ce6d1ccb26, 0x000c0af85f0b8b2e},
	{0x8657c8e09d168a66, 0xf7d4283cc9b3b39b, 0x0002b00e9801aee2},
	{0xdfd3ed687edee7e5, 0x9ecdb7a6af3dc41b, 0x00006452d7a61273},
	{0x1f6e25a516075496, 0x37922da122187bd1, 0x0026aaaac9b62c62},
	{0x9b1734490c4543e4, 0xedcb4c2affbe4dbc, 0x002a6a6114e99e4c},
	{0x9906fbff06c8b682, 0x24e8a231648a7762, 0x003664bd4bfd9a7c},
	{0xe0d19227f257b431, 0x83dd5e24ccc87706, 0x003b0bf1a715c672},
	{0x7e358482b6f5d4e9, 0xc99e6d9c5ddef826, 0x000511e6f3ddb3e9},
	{0x115bdc51a19b6831, 0xfc303d64160ca152, 0x00339e840c1145a7},
	{0xd53272047993a142, 0x0fbb262ceca95ebb, 0x0004057f3f236029},
	{0x6cadb0e78bbba055, 0xfdb0d975ebe116d9, 0x00083c8d3933feca},
	{0xd615011411acf15e, 0x89e3d1cb76def802, 0x000c1b2915a08aae},
	{0xd8ff539c2b057b35, 0xdc557115c8bddcce, 0x0025610854342d33},
	{0xc1d55ea38fd0ff69, 0x7799b48050ac9916, 0x000c25f750a52851},
	{0xfd36be11b4d68be2, 0x70358ec48728bc1c, 0x002674275962a76f},
	{0x9d4e33fe5abec3b8, 0x7006c481fc3ad089, 0x0016f83d4003c6a9},
	{0x9af341777cb0b90c, 0x8261da7792963d26, 0x0000e1118980a5c1},
	{0xdd4605587922ab53, 0x311928233b2fbcaf, 0x001df3fcd23fad18},
	{0xdb5babec58cc92ca, 0x1d8167e7b4ad03f3, 0x000ed364f2736c20},
	{0x3a4d0ef61086d4d9, 0x0403648e195e80db, 0x001adfb5856fea13},
	{0x83a32d343cd5c6ec, 0xeaac2a909bfdd0ce, 0x001a0e9d80103361},
	{0xfd1d15728d67ee4e, 0xc88770e57b54bf72, 0x0003c5a342881c8c},
	{0x406c68054939278c, 0xac8dcc6b8a92b329, 0x001fb0e1056eeeb9},
	{0x55226446255ccd46, 0xa4ee06e20a084a05, 0x0019d417eed4fd91},
	{0x9fee369da0afc0a9, 0x0db84df64c3c58f9, 0x003197392ab4feea},
	{0x25f38beb507ba2df, 0x17401cf6ac3b1415, 0x002a24301b1a69aa},
	{0x9382966ad7c79de4, 0xdcefdd119250a5b3, 0x000626529b0df996},
	{0x26b11dbbdac188b1, 0x4dba7827b3c5879e, 0x000340f8f09d3a93},
	{0xefe26d89b7fcfd27, 0x911ffeeee510e2ed, 0x00249b913fbef732},
	{0x4caea7b5e02919e5, 0xa9a93134ac7b3cbd, 0x002c76700aeb9383},
	{0x9e67d491bf9b9321, 0x3e43b93b6879c039, 0x0036d96ff7b3f1fe},
	{0x64911fafa645de0c, 0x8ef9c8fafbd8af71, 0x0029e593283dad8f},
	{0x0dfcb967473e5021, 0xd79c7b81a6d36af5, 0x000e5c4b2942da65},
	{0xbfd7b62ae098f601, 0xa6e56277a40905cb, 0x000f90c19a4920ba},
	{0xad4c31eebd4c86c6, 0xce792932905ae41f, 0x001106c268928b5f},
	{0x2ea4e476fb4cf807, 0x0a31af283fffce16, 0x00221eba8e31ba4d},
	{0xf7c3cbc157c3671c, 0xd92c36e0eeb590a6, 0x000b940110b25f4c},
	{0xa04f638f90f218be, 0xbda0edeac3aeeb3e, 0x002987d0c97a789b},
	{0x9f5445b5ab0a2cc3, 0x360e45d8f83e2632, 0x001c83d9158f0d45},
	{0x4cb59565c14d8ae8, 0x48d8dc11af50367b, 0x00214e8dcf906b56},
	{0x9aa57230372b1000, 0x93b0e7247bd74931, 0x0021a00f6963e2a7},
	{0x59d2281f9aa00000, 0x0adfe718563c4cde, 0x001741a1c8b0d83a},
	{0x3f4ed44240000000, 0x4cdcfa09111cea8b, 0x00292cc2fe09f188},
	{0x2816c68000000000, 0xddb11cf4006d204b, 0x000250ad8e4ab734},
	{0xe1a1000000000000, 0x67b9f06cdaeeab14, 0x001165665974e525},
	{0x0a00000000000000, 0x6fa699c10d8e4fe3, 0x001b377db437c41c},
	{0x0000000000000000, 0x719448b7aceb29e4, 0x000cfbea8794ffc1},
	{0x0000000000000000, 0x14b926904e35e800, 0x0022b109015a2395},
	{0x0000000000000000, 0x8d43569c19100000, 0x0014fcb3e388c59e},
	{0x0000000000000000, 0x3604ef66a0000000, 0x001fd83e57de9aef},
	{0x0000000000000000, 0x8f833a4000000000, 0x0033d44dfb9a62c4},
	{0x0000000000000000, 0x5676800000000000, 0x0023f21c8940ac9b},
	{0x0000000000000000, 0x8100000000000000, 0x000f0ee2aa91e502},
	{0x0000000000000000, 0x0000000000000000, 0x0021f7fe75f093ca},
	{0x0000000000000000, 0x0000000000000000, 0x003803864a216400},
	{0x000000000002841e, 0x0000000000000000, 0x0000000000000000},
	{0x000095f83d0a1fb7, 0x0000000000000000, 0x0000000000000000},
	{0xe3bbed90270686b5, 0x00000000000022ea, 0x0000000000000000},
	{0x6b29b9c3b29620e3, 0x000008213f56a67f, 0x0000000000000000},
	{0xc67672ce7919d87c, 0x94034e79e5b99f78, 0x00000000000001e4},
	{0x1cb4b9ff04f8f3f8, 0xe93228af3c39fc50, 0x00000070d31c29dd},
	{0x445197e92c24304f, 0x7065dd8dffe6223c, 0x00068ead8d45f18e},
	{0x814ee1bbc309313b, 0x6238064013037500, 0x001048f654317c07},
	{0x4f0499c565dd6aef, 0xbbdbcb0c3a6d5d82, 0x000b85815bf1d2a4},
	{0xa08f1138125e44f7, 0x650a007194626a8e, 0x00384dc37e9aa63f},
	{0x2b8d0518c8b9ec86, 0x55df90d8a0e219b9, 0x002401d2a59a1bd8},
	{0x0d3127bdd1deecac, 0x77afd2e38eb9cf5f, 0x0023e19935e6e2a1},
	{0x70ea683fbc279a16, 0x0b303d3044d94423, 0x0035c1d5ba8aedd0},
	{0x5cf69accf335eb27, 0xff2f93ba981bea22, 0x002058cfa16101f2},
	{0xf17d7389d23ba2b9, 0x69df2bc6cad7df60, 0x0016961ab8873706},
	{0x4186f6435d9a7177, 0x3ee0a2660e3bada5, 0x001f7b7045ad2ee1},
	{0x296a0eea87fe130c, 0x76d0d826a287eba6, 0x00285284c3fb542c},
	{0xb6326c899b06f975, 0xb94195524d7177ea, 0x003a845d328cb133},
	{0xcb267203621959c3, 0x8b2eae00c3ce6d1c, 0x0020c1e888a25f0b},
	{0xb39b8657c8e09d17, 0xaee2f7d4283cc9b3, 0x0025ce14f5049801},
	{0xc41bdfd3ed687edf, 0x12739ecdb7a6af3d, 0x000111cf7442d7a6},
	{0x7bd11f6e25a51608, 0x2c6237922da12218, 0x000f901dbe50c9b6},
	{0x4dbc9b1734490c46, 0x9e4cedcb4c2affbe, 0x0012cf5612fb14e9},
	{0x77629906fbff06c9, 0x9a7c24e8a231648a, 0x003a75a28a854bfd},
	{0x7706e0d19227f258, 0xc67283dd5e24ccc8, 0x001f091c571fa715},
	{0xf8267e358482b6f6, 0xb3e9c99e6d9c5dde, 0x00075ea581acf3dd},
	{0xa152115bdc51a19c, 0x45a7fc303d64160c, 0x002844c744420c11},
	{0x5ebbd53272047994, 0x60290fbb262ceca9, 0x000f60b75af73f23},
	{0x16d96cadb0e78bbc, 0xfecafdb0d975ebe1, 0x0039910c3a433933},
	{0xf802d615011411ad, 0x8aae89e3d1cb76de, 0x000fa6d4702315a0},
	{0xdcced8ff539c2b06, 0x2d33dc557115c8bd, 0x00082b32b19a5434},
	{0x9916c1d55ea38fd1, 0x28517799b48050ac, 0x0023eeb8743f50a5},
	{0xbc1cfd36be11b4d7, 0xa76f70358ec48728, 0x000ebdde89475962},
	{0xd0899d4e33fe5abf, 0xc6a97006c481fc3a, 0x00109cbdce774003},
	{0x3d269af341777cb1, 0xa5c18261da779296, 0x001bc3db79918980},
	{0xbcafdd4605587923, 0xad18311928233b2f, 0x0021e2b03416d23f},
	{0x03f3db5babec58cd, 0x6c201d8167e7b4ad, 0x000550412918f273},
	{0x80db3a4d0ef61087, 0xea130403648e195e, 0x0005cef622a9856f},
	{0xd0ce83a32d343cd6, 0x3361eaac2a909bfd, 0x00277840d38f8010},
	{0xbf72fd1d15728d68, 0x1c8cc88770e57b54, 0x0021694800a34288},
	{0xb329406c6805493a, 0xeeb9ac8dcc6b8a92, 0x0026030c36f5056e},
	{0x4a0555226446255d, 0xfd91a4ee06e20a08, 0x00390c672c09eed4},
	{0x58f99fee369da0b0, 0xfeea0db84df64c3c, 0x0002500c99052ab4},
	{0x141525f38beb507c, 0x69aa17401cf6ac3b, 0x000133f77b541b1a},
	{0xa5b39382966ad7c8, 0xf996dcefdd119250, 0x00139519c1a09b0d},
	{0x879e26b11dbbdac2, 0x3a934dba7827b3c5, 0x002564d83946f09d},
	{0xe2edefe26d89b7fd, 0xf732911ffeeee510, 0x00108458f4f13fbe},
	{0x3cbd4caea7b5e02a, 0x9383a9a93134ac7b, 0x00382b8fb8260aeb},
	{0xc0399e67d491bf9c, 0xf1fe3e43b93b6879, 0x0008db84e153f7b3},
	{0xaf7164911fafa646, 0xad8f8ef9c8fafbd8, 0x00138cdbbc79283d},
	{0x6af50dfcb967473f, 0xda65d79c7b81a6d3, 0x001c358805db2942},
	{0x05cbbfd7b62ae099, 0x20baa6e56277a409, 0x00330706291b9a49},
	{0xe41fad4c31eebd4d, 0x8b5fce792932905a, 0x00066d3f72466892},
	{0xce162ea4e476fb4d, 0xba4d0a31af283fff, 0x001064ac3cca8e31},
	{0x90a6f7c3cbc157c4, 0x5f4cd92c36e0eeb5, 0x002f293ed40d10b2},
	{0xeb3ea04f638f90f3, 0x789bbda0edeac3ae, 0x00030abf7670c97a},
	{0x26329f5445b5ab0b, 0x0d45360e45d8f83e, 0x001a42a16c73158f},
	{0x367b4cb59565c14e, 0x6b5648d8dc11af50, 0x001acb8dbf1fcf90},
	{0x49319aa57230372c, 0xe2a793b0e7247bd7, 0x000768123f656963},
	{0x4cde59d2281f9aa0, 0xd83a0adfe718563c, 0x00179c9b707bc8b0},
	{0xea8b3f4ed4424000, 0xf1884cdcfa09111c, 0x001cd2192892fe09},
	{0x204b2816c6800000, 0xb734ddb11cf4006d, 0x0022396d19198e4a},
	{0xab14e1a100000000, 0xe52567b9f06cdaee, 0x0005f33efb725974},
	{0x4fe30a0000000000, 0xc41c6fa699c10d8e, 0x001a9fc1fbb7b437},
	{0x29e4000000000000, 0xffc1719448b7aceb, 0x002ac59c37f28794},
	{0xe800000000000000, 0x239514b926904e35, 0x003877e4458f015a},
	{0x0000000000000000, 0xc59e8d43569c1910, 0x00214bc76d7de388},
	{0x0000000000000000, 0x9aef3604ef66a000, 0x001d4f8ebb5c57de},
	{0x0000000000000000, 0x62c48f833a400000, 0x0015801606f3fb9a},
	{0x0000000000000000, 0xac9b567680000000, 0x0038ce82742a8940},
	{0x0000000000000000, 0xe502810000000000, 0x0009e75a08fcaa91},
	{0x0000000000000000, 0x93ca000000000000, 0x003ad4159a2275f0},
	{0x0000000000000000, 0x6400000000000000, 0x0008060495d84a21},
	{0x0000000000000000, 0x0000000000000000, 0x00325bdcf4a080e8},
	{0x0000000000000000, 0x0000000000000000, 0x00255ec1a9471000},
	{0x0000000000000003, 0x0000000000000000, 0x0000000000000000},
	{0x0000000095f83d0b, 0x0000000000000000, 0x0000000000000000},
	{0x22eae3bbed902707, 0x0000000000000000, 0x0000000000000000},
	{0xa67f6b29b9c3b297, 0x0000000008213f56, 0x0000000000000000},
	{0x9f78c67672ce791a, 0x01e494034e79e5b9, 0x0000000000000000},
	{0xfc501cb4b9ff04f9, 0x29dde93228af3c39, 0x000000000070d31c},
	{0x223c445197e92c25, 0xf18e7065dd8dffe6, 0x001a44df832b8d45},
	{0x7500814ee1bbc30a, 0x7c07623806401303, 0x000a23e478385431},
	{0x5d824f0499c565de, 0xd2a4bbdbcb0c3a6d, 0x000d1d767fc95bf1},
	{0x6a8ea08f1138125f, 0xa63f650a00719462, 0x002ee1f0ed917e9a},
	{0x19b92b8d0518c8ba, 0x1bd855df90d8a0e2, 0x0021e0269b3ea59a},
	{0xcf5f0d3127bdd1df, 0xe2a177afd2e38eb9, 0x000e960b91cb35e6},
	{0x442370ea683fbc28, 0xedd00b303d3044d9, 0x002f504afba7ba8a},
	{0xea225cf69accf336, 0x01f2ff2f93ba981b, 0x00270d689593a161},
	{0xdf60f17d7389d23c, 0x370669df2bc6cad7, 0x00225f74ed24b887},
	{0xada54186f6435d9b, 0x2ee13ee0a2660e3b, 0x00088cbb24a045ad},
	{0xeba6296a0eea87ff, 0x542c76d0d826a287, 0x002550f74af6c3fb},
	{0x77eab6326c899b07, 0xb133b94195524d71, 0x0039745f883b328c},
	{0x6d1ccb267203621a, 0x5f0b8b2eae00c3ce, 0x000dc8718b5c88a2},
	{0xc9b3b39b8657c8e1, 0x9801aee2f7d4283c, 0x00158b70a164f504},
	{0xaf3dc41bdfd3ed69, 0xd7a612739ecdb7a6, 0x001781831d217442},
	{0x22187bd11f6e25a6, 0xc9b62c6237922da1, 0x0007ca05bda5be50},
	{0xffbe4dbc9b17344a, 0x14e99e4cedcb4c2a, 0x00269713e34212fb},
	{0x648a77629906fc00, 0x4bfd9a7c24e8a231, 0x000f62536bd68a85},
	{0xccc87706e0d19228, 0xa715c67283dd5e24, 0x0031f3a55600571f},
	{0x5ddef8267e358483, 0xf3ddb3e9c99e6d9c, 0x00001448f94b81ac},
	{0x160ca152115bdc52, 0x0c1145a7fc303d64, 0x0011948a72914442},
	{0xeca95ebbd5327205, 0x3f2360290fbb262c, 0x0021d290e85f5af7},
	{0xebe116d96cadb0e8, 0x3933fecafdb0d975, 0x0016339ef2103a43},
	{0x76def802d6150115, 0x15a08aae89e3d1cb, 0x0003c73d58987023},
	{0xc8bddcced8ff539d, 0x54342d33dc557115, 0x00237e03d392b19a},
	{0x50ac9916c1d55ea4, 0x50a528517799b480, 0x002227a12862743f},
	{0x8728bc1cfd36be12, 0x5962a76f70358ec4, 0x0016ec5235668947},
	{0xfc3ad0899d4e33ff, 0x4003c6a97006c481, 0x0017dfa2eed7ce77},
	{0x92963d269af34178, 0x8980a5c18261da77, 0x00323f11f8677991},
	{0x3b2fbcafdd460559, 0xd23fad1831192823, 0x00181795522a3416},
	{0xb4ad03f3db5babed, 0xf2736c201d8167e7, 0x0009d385e5492918},
	{0x195e80db3a4d0ef7, 0x856fea130403648e, 0x001108b5335022a9},
	{0x9bfdd0ce83a32d35, 0x80103361eaac2a90, 0x0012a8712714d38f},
	{0x7b54bf72fd1d1573, 0x42881c8cc88770e5, 0x0004d959c5c600a3},
	{0x8a92b329406c6806, 0x056eeeb9ac8dcc6b, 0x002e19de3f0c36f5},
	{0x0a084a0555226447, 0xeed4fd91a4ee06e2, 0x0002d80d2b032c09},
	{0x4c3c58f99fee369e, 0x2ab4feea0db84df6, 0x0000bd1148c49905},
	{0xac3b141525f38bec, 0x1b1a69aa17401cf6, 0x002dc6235eb17b54},
	{0x9250a5b39382966b, 0x9b0df996dcefdd11, 0x002952bc9e27c1a0},
	{0xb3c5879e26b11dbc, 0xf09d3a934dba7827, 0x000941a9dd223946},
	{0xe510e2edefe26d8a, 0x3fbef732911ffeee, 0x0007f7e4cf52f4f1},
	{0xac7b3cbd4caea7b6, 0x0aeb9383a9a93134, 0x0013509c6817b826},
	{0x6879c0399e67d492, 0xf7b3f1fe3e43b93b, 0x000585c842b4e153},
	{0xfbd8af7164911fb0, 0x283dad8f8ef9c8fa, 0x002a1d4ca065bc79},
	{0xa6d36af50dfcb968, 0x2942da65d79c7b81, 0x0017aff393e005db},
	{0xa40905cbbfd7b62b, 0x9a4920baa6e56277, 0x003428cdccf8291b},
	{0x905ae41fad4c31ef, 0x68928b5fce792932, 0x0039c785e7997246},
	{0x3fffce162ea4e477, 0x8e31ba4d0a31af28, 0x0023ba1e0ca03cca},
	{0xeeb590a6f7c3cbc2, 0x10b25f4cd92c36e0, 0x00254ee5b096d40d},
	{0xc3aeeb3ea04f6390, 0xc97a789bbda0edea, 0x00231e1196077670},
	{0xf83e26329f5445b6, 0x158f0d45360e45d8, 0x0001bccf21bd6c73},
	{0xaf50367b4cb59566, 0xcf906b5648d8dc11, 0x002c1a873ac5bf1f},
	{0x7bd749319aa57231, 0x6963e2a793b0e724, 0x002e0a9d56c83f65},
	{0x563c4cde59d22820, 0xc8b0d83a0adfe718, 0x002e9fb08451707b},
	{0x111cea8b3f4ed443, 0xfe09f1884cdcfa09, 0x0012f62a74792892},
	{0x006d204b2816c680, 0x8e4ab734ddb11cf4, 0x001c359be2fd1919},
	{0xdaeeab14e1a10000, 0x5974e52567b9f06c, 0x003aedd1b2f8fb72},
	{0x0d8e4fe30a000000, 0xb437c41c6fa699c1, 0x0039f87f13cffbb7},
	{0xaceb29e400000000, 0x8794ffc1719448b7, 0x00306cc4dfaa37f2},
	{0x4e35e80000000000, 0x015a239514b92690, 0x0027a1d0dd4a458f},
	{0x1910000000000000, 0xe388c59e8d43569c, 0x00114af068396d7d},
	{0xa000000000000000, 0x57de9aef3604ef66, 0x000d5ef53190bb5c},
	{0x0000000000000000, 0xfb9a62c48f833a40, 0x0021b2b131a406f3},
	{0x0000000000000000, 0x8940ac9b56768000, 0x002630c7d73e742a},
	{0x0000000000000000, 0xaa91e50281000000, 0x000e8a88f6e208fc},
	{0x0000000000000000, 0x75f093ca00000000, 0x0034a0bdfe659a22},
	{0x0000000000000000, 0x4a21640000000000, 0x0017a7f4d58895d8},
	{0x0000000000000000, 0x80e8000000000000, 0x001fcd1ec36ef4a0},
	{0x0000000000000000, 0x1000000000000000, 0x0019d577b349a947},
	{0x0000000000000000, 0x0000000000000000, 0x0011268d5501b2a0},
	{0x0000000000000000, 0x0000000000000000, 0x00006531ab324000},
	{0x00000000000095f9, 0x0000000000000000, 0x0000000000000000},
	{0x000022eae3bbed91, 0x0000000000000000, 0x0000000000000000},
	{0x3f56a67f6b29b9c4, 0x0000000000000821, 0x0000000000000000},
	{0xe5b99f78c67672cf, 0x000001e494034e79, 0x0000000000000000},
	{0x3c39fc501cb4ba00, 0xd31c29dde93228af, 0x0000000000000070},
	{0xffe6223c445197ea, 0x8d45f18e7065dd8d, 0x0000001a44df832b},
	{0x13037500814ee1bc, 0x54317c0762380640, 0x00340a604f427838},
	{0x3a6d5d824f0499c6, 0x5bf1d2a4bbdbcb0c, 0x000f79e5c0267fc9},
	{0x94626a8ea08f1139, 0x7e9aa63f650a0071, 0x0008f6baa826ed91},
	{0xa0e219b92b8d0519, 0xa59a1bd855df90d8, 0x0009104a29289b3e},
	{0x8eb9cf5f0d3127be, 0x35e6e2a177afd2e3, 0x00097454de5991cb},
	{0x44d9442370ea6840, 0xba8aedd00b303d30, 0x0014dac236b4fba7},
	{0x981bea225cf69acd, 0xa16101f2ff2f93ba, 0x002a236dd9769593},
	{0xcad7df60f17d738a, 0xb887370669df2bc6, 0x001b9c2c9306ed24},
	{0x0e3bada54186f644, 0x45ad2ee13ee0a266, 0x00019cd795bd24a0},
	{0xa287eba6296a0eeb, 0xc3fb542c76d0d826, 0x002c09ce375f4af6},
	{0x4d7177eab6326c8a, 0x328cb133b9419552, 0x00162fe528c3883b},
	{0xc3ce6d1ccb267204, 0x88a25f0b8b2eae00, 0x002d869fe1c18b5c},
	{0x283cc9b3b39b8658, 0xf5049801aee2f7d4, 0x002d1024e11ea164},
	{0xb7a6af3dc41bdfd4, 0x7442d7a612739ecd, 0x000721b7868d1d21},
	{0x2da122187bd11f6f, 0xbe50c9b62c623792, 0x0020db0994e7bda5},
	{0x4c2affbe4dbc9b18, 0x12fb14e99e4cedcb, 0x0035f4d42435e342},
	{0xa231648a77629907, 0x8a854bfd9a7c24e8, 0x000c8bf575716bd6},
	{0x5e24ccc87706e0d2, 0x571fa715c67283dd, 0x001a686ed0135600},
	{0x6d9c5ddef8267e36, 0x81acf3ddb3e9c99e, 0x000480831224f94b},
	{0x3d64160ca152115c, 0x44420c1145a7fc30, 0x00089bcf8b047291},
	{0x262ceca95ebbd533, 0x5af73f2360290fbb, 0x00010917e884e85f},
	{0xd975ebe116d96cae, 0x3a433933fecafdb0, 0x001ef1eaa2aef210},
	{0xd1cb76def802d616, 0x702315a08aae89e3, 0x0028bb9166315898},
	{0x7115c8bddcced900, 0xb19a54342d33dc55, 0x000b7d415d73d392},
	{0xb48050ac9916c1d6, 0x743f50a528517799, 0x001af7cb7a1f2862},
	{0x8ec48728bc1cfd37, 0x89475962a76f7035, 0x0007412591e23566},
	{0xc481fc3ad0899d4f, 0xce774003c6a97006, 0x0034ab153f74eed7},
	{0xda7792963d269af4, 0x79918980a5c18261, 0x001b39bfaeddf867},
	{0x28233b2fbcafdd47, 0x3416d23fad183119, 0x0033ae766d45522a},
	{0x67e7b4ad03f3db5c, 0x2918f2736c201d81, 0x001023d9da39e549},
	{0x648e195e80db3a4e, 0x22a9856fea130403, 0x000d7ad979673350},
	{0x2a909bfdd0ce83a4, 0xd38f80103361eaac, 0x00180739c4af2714},
	{0x70e57b54bf72fd1e, 0x00a342881c8cc887, 0x0028c7e9841fc5c6},
	{0xcc6b8a92b329406d, 0x36f5056eeeb9ac8d, 0x000765caad503f0c},
	{0x06e20a084a055523, 0x2c09eed4fd91a4ee, 0x0012af0d0fc32b03},
	{0x4df64c3c58f99fef, 0x99052ab4feea0db8, 0x002d70eb9aff48c4},
	{0x1cf6ac3b141525f4, 0x7b541b1a69aa1740, 0x003b702084f35eb1},
	{0xdd119250a5b39383, 0xc1a09b0df996dcef, 0x0038a9f9e6e89e27},
	{0x7827b3c5879e26b2, 0x3946f09d3a934dba, 0x00362919da55dd22},
	{0xfeeee510e2edefe3, 0xf4f13fbef732911f, 0x0013fde1aa46cf52},
	{0x3134ac7b3cbd4caf, 0xb8260aeb9383a9a9, 0x00107c98b5f26817},
	{0xb93b6879c0399e68, 0xe153f7b3f1fe3e43, 0x0038708f5bd842b4},
	{0xc8fafbd8af716492, 0xbc79283dad8f8ef9, 0x00325a227560a065},
	{0x7b81a6d36af50dfd, 0x05db2942da65d79c, 0x00167f642e3393e0},
	{0x6277a40905cbbfd8, 0x291b9a4920baa6e5, 0x000c024448cbccf8},
	{0x2932905ae41fad4d, 0x724668928b5fce79, 0x002f73774e7de799},
	{0xaf283fffce162ea5, 0x3cca8e31ba4d0a31, 0x001d508108640ca0},
	{0x36e0eeb590a6f7c4, 0xd40d10b25f4cd92c, 0x00174b67785db096},
	{0xedeac3aeeb3ea050, 0x7670c97a789bbda0, 0x0015d058eaf19607},
	{0x45d8f83e26329f55, 0x6c73158f0d45360e, 0x00383fa6992b21bd},
	{0xdc11af50367b4cb6, 0xbf1fcf906b5648d8, 0x000a0adafc913ac5},
	{0xe7247bd749319aa6, 0x3f656963e2a793b0, 0x0021d05b866156c8},
	{0xe718563c4cde59d3, 0x707bc8b0d83a0adf, 0x0016a9db298c8451},
	{0xfa09111cea8b3f4f, 0x2892fe09f1884cdc, 0x0020b7753e527479},
	{0x1cf4006d204b2817, 0x19198e4ab734ddb1, 0x001332b30d23e2fd},
	{0xf06cdaeeab14e1a1, 0xfb725974e52567b9, 0x00085b033225b2f8},
	{0x99c10d8e4fe30a00, 0xfbb7b437c41c6fa6, 0x0008c70acaf313cf},
	{0x48b7aceb29e40000, 0x37f28794ffc17194, 0x0038988aa7c2dfaa},
	{0x26904e35e8000000, 0x458f015a239514b9, 0x002d5f608bc6dd4a},
	{0x569c191000000000, 0x6d7de388c59e8d43, 0x002e4d3e27526839},
	{0xef66a00000000000, 0xbb5c57de9aef3604, 0x00132fd8f5053190},
	{0x3a40000000000000, 0x06f3fb9a62c48f83, 0x00013590455b31a4},
	{0x8000000000000000, 0x742a8940ac9b5676, 0x00153b949f71d73e},
	{0x0000000000000000, 0x08fcaa91e5028100, 0x001a8170b42ef6e2},
	{0x0000000000000000, 0x9a2275f093ca0000, 0x000aef4baad9fe65},
	{0x0000000000000000, 0x95d84a2164000000, 0x0032c1707660d588},
	{0x0000000000000000, 0xf4a080e800000000, 0x00168bc35730c36e},
	{0x0000000000000000, 0xa947100000000000, 0x000b5a869d55b349},
	{0x0000000000000000, 0xb2a0000000000000, 0x0013f42373cb5501},
	{0x0000000000000000, 0x4000000000000000, 0x002f5788f843ab32},
	{0x0000000000000000, 0x0000000000000000, 0x000fc15ef6102680},
	{0x0000000022eae3bc, 0x0000000000000000, 0x0000000000000000},
	{0x08213f56a67f6b2a, 0x0000000000000000, 0x0000000000000000},
	{0x4e79e5b99f78c677, 0x0000000001e49403, 0x0000000000000000},
	{0x28af3c39fc501cb5, 0x0070d31c29dde932, 0x0000000000000000},
	{0xdd8dffe6223c4452, 0x832b8d45f18e7065, 0x00000000001a44df},
	{0x064013037500814f, 0x783854317c076238, 0x00061dc1ac084f42},
	{0xcb0c3a6d5d824f05, 0x7fc95bf1d2a4bbdb, 0x0001ef4a8e3bc026},
	{0x007194626a8ea090, 0xed917e9aa63f650a, 0x000de9699c3aa826},
	{0x90d8a0e219b92b8e, 0x9b3ea59a1bd855df, 0x000da83868da2928},
	{0xd2e38eb9cf5f0d32, 0x91cb35e6e2a177af, 0x0032cb6542aede59},
	{0x3d3044d9442370eb, 0xfba7ba8aedd00b30, 0x0028b6fa61ee36b4},
	{0x93ba981bea225cf7, 0x9593a16101f2ff2f, 0x003776a49609d976},
	{0x2bc6cad7df60f17e, 0xed24b887370669df, 0x00024b12eb669306},
	{0xa2660e3bada54187, 0x24a045ad2ee13ee0, 0x0017e1e7fad595bd},
	{0xd826a287eba6296b, 0x4af6c3fb542c76d0, 0x0031baa73360375f},
	{0x95524d7177eab633, 0x883b328cb133b941, 0x001666f0314b28c3},
	{0xae00c3ce6d1ccb27, 0x8b5c88a25f0b8b2e, 0x00117fd6e42fe1c1},
	{0xf7d4283cc9b3b39c, 0xa164f5049801aee2, 0x000b25fb31aee11e},
	{0x9ecdb7a6af3dc41c, 0x1d217442d7a61273, 0x0028b79f7941868d},
	{0x37922da122187bd2, 0xbda5be50c9b62c62, 0x000f41a12ac594e7},
	{0xedcb4c2affbe4dbd, 0xe34212fb14e99e4c, 0x002e00c8e39c2435},
	{0x24e8a231648a7763, 0x6bd68a854bfd9a7c, 0x00245ac1685d7571},
	{0x83dd5e24ccc87707, 0x5600571fa715c672, 0x0015c29388c0d013},
	{0xc99e6d9c5ddef827, 0xf94b81acf3ddb3e9, 0x002ce489c4a31224},
	{0xfc303d64160ca153, 0x729144420c1145a7, 0x0025f7c81c038b04},
	{0x0fbb262ceca95ebc, 0xe85f5af73f236029, 0x0000d32e72c5e884},
	{0xfdb0d975ebe116da, 0xf2103a433933feca, 0x002e1440aafaa2ae},
	{0x89e3d1cb76def803, 0x5898702315a08aae, 0x003a5b09f3656631},
	{0xdc557115c8bddccf, 0xd392b19a54342d33, 0x00179bdcdbbd5d73},
	{0x7799b48050ac9917, 0x2862743f50a52851, 0x002c1709552d7a1f},
	{0x70358ec48728bc1d, 0x356689475962a76f, 0x000a96a4876991e2},
	{0x7006c481fc3ad08a, 0xeed7ce774003c6a9, 0x00189474317f3f74},
	{0x8261da7792963d27, 0xf86779918980a5c1, 0x001da0908775aedd},
	{0x311928233b2fbcb0, 0x522a3416d23fad18, 0x001b667535c26d45},
	{0x1d8167e7b4ad03f4, 0xe5492918f2736c20, 0x002d44be1fdbda39},
	{0x0403648e195e80dc, 0x335022a9856fea13, 0x0033303a18dd7967},
	{0xeaac2a909bfdd0cf, 0x2714d38f80103361, 0x003390e492b3c4af},
	{0xc88770e57b54bf73, 0xc5c600a342881c8c, 0x0029db068891841f},
	{0xac8dcc6b8a92b32a, 0x3f0c36f5056eeeb9, 0x0021e16f9ff2ad50},
	{0xa4ee06e20a084a06, 0x2b032c09eed4fd91, 0x003880ad3d8f0fc3},
	{0x0db84df64c3c58fa, 0x48c499052ab4feea, 0x00214f2258c19aff},
	{0x17401cf6ac3b1416, 0x5eb17b541b1a69aa, 0x002d13c8d7a484f3},
	{0xdcefdd119250a5b4, 0x9e27c1a09b0df996, 0x00264e1de221e6e8},
	{0x4dba7827b3c5879f, 0xdd223946f09d3a93, 0x0007e4b74495da55},
	{0x911ffeeee510e2ee, 0xcf52f4f13fbef732, 0x0022e3ed5fe5aa46},
	{0xa9a93134ac7b3cbe, 0x6817b8260aeb9383, 0x0035791bf8bcb5f2},
	{0x3e43b93b6879c03a, 0x42b4e153f7b3f1fe, 0x002bf00939615bd8},
	{0x8ef9c8fafbd8af72, 0xa065bc79283dad8f, 0x0016ab08e9f07560},
	{0xd79c7b81a6d36af6, 0x93e005db2942da65, 0x0037fc719db62e33},
	{0xa6e56277a40905cc, 0xccf8291b9a4920ba, 0x002a6acd6e9048cb},
	{0xce792932905ae420, 0xe799724668928b5f, 0x002198049c474e7d},
	{0x0a31af283fffce17, 0x0ca03cca8e31ba4d, 0x00109a34800d0864},
	{0xd92c36e0eeb590a7, 0xb096d40d10b25f4c, 0x000308d063b7785d},
	{0xbda0edeac3aeeb3f, 0x96077670c97a789b, 0x002ab7acc508eaf1},
	{0x360e45d8f83e2633, 0x21bd6c73158f0d45, 0x0002138a0c4a992b},
	{0x48d8dc11af50367c, 0x3ac5bf1fcf906b56, 0x00115e67f194fc91},
	{0x93b0e7247bd74932, 0x56c83f656963e2a7, 0x0022b04af7338661},
	{0x0adfe718563c4cdf, 0x8451707bc8b0d83a, 0x000bff1fed97298c},
	{0x4cdcfa09111cea8c, 0x74792892fe09f188, 0x002331f9a7cf3e52},
	{0xddb11cf4006d204c, 0xe2fd19198e4ab734, 0x003040ac059f0d23},
	{0x67b9f06cdaeeab15, 0xb2f8fb725974e525, 0x00250832ad453225},
	{0x6fa699c10d8e4fe4, 0x13cffbb7b437c41c, 0x00101c65747ecaf3},
	{0x719448b7aceb29e4, 0xdfaa37f28794ffc1, 0x001d857027eea7c2},
	{0x14b926904e35e800, 0xdd4a458f015a2395, 0x003790f725268bc6},
	{0x8d43569c19100000, 0x68396d7de388c59e, 0x0008f98554ec2752},
	{0x3604ef66a0000000, 0x3190bb5c57de9aef, 0x0036fbd9fc9ef505},
	{0x8f833a4000000000, 0x31a406f3fb9a62c4, 0x0025029504e2455b},
	{0x5676800000000000, 0xd73e742a8940ac9b, 0x0034aecc48069f71},
	{0x8100000000000000, 0xf6e208fcaa91e502, 0x00018ac060e6b42e},
	{0x0000000000000000, 0xfe659a2275f093ca, 0x0035b7054153aad9},
	{0x0000000000000000, 0xd58895d84a216400, 0x00137af709947660},
	{0x0000000000000000, 0xc36ef4a080e80000, 0x0022910cacdf5730},
	{0x0000000000000000, 0xb349a94710000000, 0x00340022eb2c9d55},
	{0x0000000000000000, 0x5501b2a000000000, 0x000a633c9a0573cb},
	{0x0000000000000000, 0xab32400000000000, 0x000144fbd246f843},
	{0x0000000000000000, 0x2680000000000000, 0x00108620f10ef610},
	{0x0000000000000000, 0x0000000000000000, 0x00037bc18cbf6761},
	{0x0000000000000000, 0x0000000000000000, 0x002c908e92ec8a00},
	{0x00000000000022eb, 0x0000000000000000, 0x0000000000000000},
	{0x000008213f56a680, 0x0000000000000000, 0x0000000000000000},
	{0x94034e79e5b99f79, 0x00000000000001e4, 0x0000000000000000},
	{0xe93228af3c39fc51, 0x00000070d31c29dd, 0x0000000000000000},
	{0x7065dd8dffe6223d, 0x44df832b8d45f18e, 0x000000000000001a},
	{0x6238064013037501, 0x4f42783854317c07, 0x000000061dc1ac08},
	{0xbbdbcb0c3a6d5d83, 0xc0267fc95bf1d2a4, 0x002d17c039028e3b},
	{0x650a007194626a8f, 0xa826ed917e9aa63f, 0x0000985359759c3a},
	{0x55df90d8a0e219ba, 0x29289b3ea59a1bd8, 0x001b621e4d5068da},
	{0x77afd2e38eb9cf60, 0xde5991cb35e6e2a1, 0x0012b8c8cd7542ae},
	{0x0b303d3044d94424, 0x36b4fba7ba8aedd0, 0x001b4d44f10e61ee},
	{0xff2f93ba981bea23, 0xd9769593a16101f2, 0x00035944292e9609},
	{0x69df2bc6cad7df61, 0x9306ed24b8873706, 0x000ad8bf496eeb66},
	{0x3ee0a2660e3bada6, 0x95bd24a045ad2ee1, 0x0019d351c555fad5},
	{0x76d0d826a287eba7, 0x375f4af6c3fb542c, 0x001404cbf5eb3360},
	{0xb94195524d7177eb, 0x28c3883b328cb133, 0x0036c30dab2e314b},
	{0x8b2eae00c3ce6d1d, 0xe1c18b5c88a25f0b, 0x000ac14a6c80e42f},
	{0xaee2f7d4283cc9b4, 0xe11ea164f5049801, 0x001e028601e331ae},
	{0x12739ecdb7a6af3e, 0x868d1d217442d7a6, 0x0034e5d276497941},
	{0x2c6237922da12219, 0x94e7bda5be50c9b6, 0x00111b5f051b2ac5},
	{0x9e4cedcb4c2affbf, 0x2435e34212fb14e9, 0x00065348b3ece39c},
	{0x9a7c24e8a231648b, 0x75716bd68a854bfd, 0x003727b0d3df685d},
	{0xc67283dd5e24ccc9, 0xd0135600571fa715, 0x003404229aa388c0},
	{0xb3e9c99e6d9c5ddf, 0x1224f94b81acf3dd, 0x00261365bdd9c4a3},
	{0x45a7fc303d64160d, 0x8b04729144420c11, 0x0032b3fdb4701c03},
	{0x60290fbb262cecaa, 0xe884e85f5af73f23, 0x001a1a3e214672c5},
	{0xfecafdb0d975ebe2, 0xa2aef2103a433933, 0x0010670c3e34aafa},
	{0x8aae89e3d1cb76df, 0x66315898702315a0, 0x000c43402d2df365},
	{0x2d33dc557115c8be, 0x5d73d392b19a5434, 0x000ab2e10b9adbbd},
	{0x28517799b48050ad, 0x7a1f2862743f50a5, 0x00240e4705d7552d},
	{0xa76f70358ec48729, 0x91e2356689475962, 0x003222d4a1b68769},
	{0xc6a97006c481fc3b, 0x3f74eed7ce774003, 0x002a7f92d0fa317f},
	{0xa5c18261da779297, 0xaeddf86779918980, 0x003a40af853a8775},
	{0xad18311928233b30, 0x6d45522a3416d23f, 0x000da09bcafb35c2},
	{0x6c201d8167e7b4ae, 0xda39e5492918f273, 0x003a7d485e901fdb},
	{0xea130403648e195f, 0x7967335022a9856f, 0x00218e7c8eb018dd},
	{0x3361eaac2a909bfe, 0xc4af2714d38f8010, 0x00290034f3d492b3},
	{0x1c8cc88770e57b55, 0x841fc5c600a34288, 0x00317e576a3a8891},
	{0xeeb9ac8dcc6b8a93, 0xad503f0c36f5056e, 0x000da0dde0bf9ff2},
	{0xfd91a4ee06e20a09, 0x0fc32b032c09eed4, 0x002c9dba5a233d8f},
	{0xfeea0db84df64c3d, 0x9aff48c499052ab4, 0x0008347ecf4458c1},
	{0x69aa17401cf6ac3c, 0x84f35eb17b541b1a, 0x000fe9c7f138d7a4},
	{0xf996dcefdd119251, 0xe6e89e27c1a09b0d, 0x000d3c117dc3e221},
	{0x3a934dba7827b3c6, 0xda55dd223946f09d, 0x002d9b8e690b4495},
	{0xf732911ffeeee511, 0xaa46cf52f4f13fbe, 0x00029f9eaf955fe5},
	{0x9383a9a93134ac7c, 0xb5f26817b8260aeb, 0x0022c76b7c11f8bc},
	{0xf1fe3e43b93b687a, 0x5bd842b4e153f7b3, 0x00042f314db93961},
	{0xad8f8ef9c8fafbd9, 0x7560a065bc79283d, 0x002b20381c02e9f0},
	{0xda65d79c7b81a6d4, 0x2e3393e005db2942, 0x0000adad724b9db6},
	{0x20baa6e56277a40a, 0x48cbccf8291b9a49, 0x00119b1186af6e90},
	{0x8b5fce792932905b, 0x4e7de79972466892, 0x0028d88e30d09c47},
	{0xba4d0a31af284000, 0x08640ca03cca8e31, 0x003092270d4c800d},
	{0x5f4cd92c36e0eeb6, 0x785db096d40d10b2, 0x0011cfc465d063b7},
	{0x789bbda0edeac3af, 0xeaf196077670c97a, 0x003084fbb3cac508},
	{0x0d45360e45d8f83f, 0x992b21bd6c73158f, 0x002f360394fc0c4a},
	{0x6b5648d8dc11af51, 0xfc913ac5bf1fcf90, 0x003aaf3b77dff194},
	{0xe2a793b0e7247bd8, 0x866156c83f656963, 0x003424155e74f733},
	{0xd83a0adfe718563d, 0x298c8451707bc8b0, 0x001b3bb1e005ed97},
	{0xf1884cdcfa09111d, 0x3e5274792892fe09, 0x0001615770fba7cf},
	{0xb734ddb11cf4006e, 0x0d23e2fd19198e4a, 0x003a97d64872059f},
	{0xe52567b9f06cdaef, 0x3225b2f8fb725974, 0x001a8c3d0224ad45},
	{0xc41c6fa699c10d8f, 0xcaf313cffbb7b437, 0x00088a1c1ee7747e},
	{0xffc1719448b7acec, 0xa7c2dfaa37f28794, 0x0035e3cbeef827ee},
	{0x239514b926904e36, 0x8bc6dd4a458f015a, 0x0039c73fd5bd2526},
	{0xc59e8d43569c1910, 0x275268396d7de388, 0x002c09ed7ab754ec},
	{0x9aef3604ef66a000, 0xf5053190bb5c57de, 0x002aaf6c2c21fc9e},
	{0x62c48f833a400000, 0x455b31a406f3fb9a, 0x0007e9c56b6d04e2},
	{0xac9b567680000000, 0x9f71d73e742a8940, 0x0019620b1bf44806},
	{0xe502810000000000, 0xb42ef6e208fcaa91, 0x0038e04d9b9060e6},
	{0x93ca000000000000, 0xaad9fe659a2275f0, 0x00219da162c54153},
	{0x6400000000000000, 0x7660d58895d84a21, 0x002ded533a410994},
	{0x0000000000000000, 0x5730c36ef4a080e8, 0x000f24884c26acdf},
	{0x0000000000000000, 0x9d55b349a9471000, 0x00090139fbdaeb2c},
	{0x0000000000000000, 0x73cb5501b2a00000, 0x0032f8917eaa9a05},
	{0x0000000000000000, 0xf843ab3240000000, 0x0027b8a6867fd246},
	{0x0000000000000000, 0xf610268000000000, 0x001dc2bfb5d4f10e},
	{0x0000000000000000, 0x6761000000000000, 0x0031944f7beb8cbf},
	{0x0000000000000000, 0x8a00000000000000, 0x0036d7dca50692ec},
	{0x0000000000000000, 0x0000000000000000, 0x000187d61607a8e4},
	{0x0000000000000000, 0x0000000000000000, 0x0001c88e306be800},
	{0x0000000008213f57, 0x0000000000000000, 0x0000000000000000},
	{0x01e494034e79e5ba, 0x0000000000000000, 0x0000000000000000},
	{0x29dde93228af3c3a, 0x000000000070d31c, 0x0000000000000000},
	{0xf18e7065dd8dffe7, 0x001a44df832b8d45, 0x0000000000000000},
	{0x7c07623806401304, 0xac084f4278385431, 0x0000000000061dc1},
	{0xd2a4bbdbcb0c3a6e, 0x8e3bc0267fc95bf1, 0x00016c8e5ca23902},
	{0xa63f650a00719463, 0x9c3aa826ed917e9a, 0x0025c539e34d5975},
	{0x1bd855df90d8a0e3, 0x68da29289b3ea59a, 0x00120262f4584d50},
	{0xe2a177afd2e38eba, 0x42aede5991cb35e6, 0x00148f35b78acd75},
	{0xedd00b303d3044da, 0x61ee36b4fba7ba8a, 0x002051472506f10e},
	{0x01f2ff2f93ba981c, 0x9609d9769593a161, 0x00019dc0cd6e292e},
	{0x370669df2bc6cad8, 0xeb669306ed24b887, 0x0019a6196f19496e},
	{0x2ee13ee0a2660e3c, 0xfad595bd24a045ad, 0x0005e336b0ebc555},
	{0x542c76d0d826a288, 0x3360375f4af6c3fb, 0x0036e509903df5eb},
	{0xb133b94195524d72, 0x314b28c3883b328c, 0x000e6d24085fab2e},
	{0x5f0b8b2eae00c3cf, 0xe42fe1c18b5c88a2, 0x0016464c1c386c80},
	{0x9801aee2f7d4283d, 0x31aee11ea164f504, 0x000d231f7fbe01e3},
	{0xd7a612739ecdb7a7, 0x7941868d1d217442, 0x002c3d526c9c7649},
	{0xc9b62c6237922da2, 0x2ac594e7bda5be50, 0x00246ddd8c7b051b},
	{0x14e99e4cedcb4c2b, 0xe39c2435e34212fb, 0x001ca48f673ab3ec},
	{0x4bfd9a7c24e8a232, 0x685d75716bd68a85, 0x000daaf626eed3df},
	{0xa715c67283dd5e25, 0x88c0d0135600571f, 0x00379b3c64a09aa3},
	{0xf3ddb3e9c99e6d9d, 0xc4a31224f94b81ac, 0x002564bf70e9bdd9},
	{0x0c1145a7fc303d65, 0x1c038b0472914442, 0x00366c15d51fb470},
	{0x3f2360290fbb262d, 0x72c5e884e85f5af7, 0x000761c166462146},
	{0x3933fecafdb0d976, 0xaafaa2aef2103a43, 0x0010541297163e34},
	{0x15a08aae89e3d1cc, 0xf365663158987023, 0x00052dc91c2c2d2d},
	{0x54342d33dc557116, 0xdbbd5d73d392b19a, 0x000a491fa0630b9a},
	{0x50a528517799b481, 0x552d7a1f2862743f, 0x00170f8fd2f505d7},
	{0x5962a76f70358ec5, 0x876991e235668947, 0x00390c7f7ac6a1b6},
	{0x4003c6a97006c482, 0x317f3f74eed7ce77, 0x002e3f5f149cd0fa},
	{0x8980a5c18261da78, 0x8775aeddf8677991, 0x002482fb1ccf853a},
	{0xd23fad1831192824, 0x35c26d45522a3416, 0x0030512e618dcafb},
	{0xf2736c201d8167e8, 0x1fdbda39e5492918, 0x00210383e2ac5e90},
	{0x856fea130403648f, 0x18dd7967335022a9, 0x002822041ca88eb0},
	{0x80103361eaac2a91, 0x92b3c4af2714d38f, 0x00273ecd6c40f3d4},
	{0x42881c8cc88770e6, 0x8891841fc5c600a3, 0x000f1f77ec156a3a},
	{0x056eeeb9ac8dcc6c, 0x9ff2ad503f0c36f5, 0x0004fc6e4a81e0bf},
	{0xeed4fd91a4ee06e3, 0x3d8f0fc32b032c09, 0x001e3d53d87a5a23},
	{0x2ab4feea0db84df7, 0x58c19aff48c49905, 0x001c7cc0e382cf44},
	{0x1b1a69aa17401cf7, 0xd7a484f35eb17b54, 0x001e74dca71df138},
	{0x9b0df996dcefdd12, 0xe221e6e89e27c1a0, 0x0006f8b2d63b7dc3},
	{0xf09d3a934dba7828, 0x4495da55dd223946, 0x000dd9f4be30690b},
	{0x3fbef732911ffeef, 0x5fe5aa46cf52f4f1, 0x000b457afc78af95},
	{0x0aeb9383a9a93135, 0xf8bcb5f26817b826, 0x001c197047817c11},
	{0xf7b3f1fe3e43b93c, 0x39615bd842b4e153, 0x001e25e2f3094db9},
	{0x283dad8f8ef9c8fb, 0xe9f07560a065bc79, 0x00022a89c8fa1c02},
	{0x2942da65d79c7b82, 0x9db62e3393e005db, 0x003a3baedfc5724b},
	{0x9a4920baa6e56278, 0x6e9048cbccf8291b, 0x002df8b9fb0586af},
	{0x68928b5fce792933, 0x9c474e7de7997246, 0x00014961d04a30d0},
	{0x8e31ba4d0a31af29, 0x800d08640ca03cca, 0x0011461bfc070d4c},
	{0x10b25f4cd92c36e1, 0x63b7785db096d40d, 0x0001a454320665d0},
	{0xc97a789bbda0edeb, 0xc508eaf196077670, 0x00017d5552adb3ca},
	{0x158f0d45360e45d9, 0x0c4a992b21bd6c73, 0x00287176f34194fc},
	{0xcf906b5648d8dc12, 0xf194fc913ac5bf1f, 0x000f44fd760377df},
	{0x6963e2a793b0e725, 0xf733866156c83f65, 0x0000ceb975fb5e74},
	{0xc8b0d83a0adfe719, 0xed97298c8451707b, 0x003a86c21fdde005},
	{0xfe09f1884cdcfa0a, 0xa7cf3e5274792892, 0x0033a8c9341770fb},
	{0x8e4ab734ddb11cf5, 0x059f0d23e2fd1919, 0x0005753676364872},
	{0x5974e52567b9f06d, 0xad453225b2f8fb72, 0x000ca384b10d0224},
	{0xb437c41c6fa699c2, 0x747ecaf313cffbb7, 0x0003075c01b01ee7},
	{0x8794ffc1719448b8, 0x27eea7c2dfaa37f2, 0x0029019ce777eef8},
	{0x015a239514b92691, 0x25268bc6dd4a458f, 0x001bec97950bd5bd},
	{0xe388c59e8d43569d, 0x54ec275268396d7d, 0x0002c16a81ff7ab7},
	{0x57de9aef3604ef67, 0xfc9ef5053190bb5c, 0x003b7bc1a9b02c21},
	{0xfb9a62c48f833a40, 0x04e2455b31a406f3, 0x002904b1647d6b6d},
	{0x8940ac9b56768000, 0x48069f71d73e742a, 0x001d3397b6791bf4},
	{0xaa91e50281000000, 0x60e6b42ef6e208fc, 0x001c32abad9b9b90},
	{0x75f093ca00000000, 0x4153aad9fe659a22, 0x00243af0a3ef62c5},
	{0x4a21640000000000, 0x09947660d58895d8, 0x0037bc81c4a73a41},
	{0x80e8000000000000, 0xacdf5730c36ef4a0, 0x0026ef89fc4c4c26},
	{0x1000000000000000, 0xeb2c9d55b349a947, 0x0011c3aeed31fbda},
	{0x0000000000000000, 0x9a0573cb5501b2a0, 0x000ba344669f7eaa},
	{0x0000000000000000, 0xd246f843ab324000, 0x002522a15e12867f},
	{0x0000000000000000, 0xf10ef61026800000, 0x00045032fc7bb5d4},
	{0x0000000000000000, 0x8cbf676100000000, 0x001ccdb513217beb},
	{0x0000000000000000, 0x92ec8a0000000000, 0x0007cbce40eaa506},
	{0x0000000000000000, 0xa8e4000000000000, 0x0036a1e8f0081607},
	{0x0000000000000000, 0xe800000000000000, 0x0001e1f765ea306b},
	{0x0000000000000000, 0x0000000000000000, 0x003686c2c996b510},
	{0x0000000000000000, 0x0000000000000000, 0x002316da867ea000},
	{0x0000000000000822, 0x0000000000000000, 0x0000000000000000},
	{0x000001e494034e7a, 0x0000000000000000, 0x0000000000000000},
	{0xd31c29dde93228b0, 0x0000000000000070, 0x0000000000000000},
	{0x8d45f18e7065dd8e, 0x0000001a44df832b, 0x0000000000000000},
	{0x54317c0762380641, 0x1dc1ac084f427838, 0x0000000000000006},
	{0x5bf1d2a4bbdbcb0d, 0x39028e3bc0267fc9, 0x000000016c8e5ca2},
	{0x7e9aa63f650a0072, 0x59759c3aa826ed91, 0x0021256d71d1e34d},
	{0xa59a1bd855df90d9, 0x4d5068da29289b3e, 0x0030de4b2d80f458},
	{0x35e6e2a177afd2e4, 0xcd7542aede5991cb, 0x001e064917bdb78a},
	{0xba8aedd00b303d31, 0xf10e61ee36b4fba7, 0x002c2c0319ad2506},
	{0xa16101f2ff2f93bb, 0x292e9609d9769593, 0x002850397ef2cd6e},
	{0xb887370669df2bc7, 0x496eeb669306ed24, 0x003888278ddb6f19},
	{0x45ad2ee13ee0a267, 0xc555fad595bd24a0, 0x00331748ceccb0eb},
	{0xc3fb542c76d0d827, 0xf5eb3360375f4af6, 0x002fa88a47e9903d},
	{0x328cb133b9419553, 0xab2e314b28c3883b, 0x0036617758c4085f},
	{0x88a25f0b8b2eae01, 0x6c80e42fe1c18b5c, 0x002da475c49c1c38},
	{0xf5049801aee2f7d5, 0x01e331aee11ea164, 0x002458e529377fbe},
	{0x7442d7a612739ece, 0x76497941868d1d21, 0x000cebff6d886c9c},
	{0xbe50c9b62c623793, 0x051b2ac594e7bda5, 0x001fc3850b158c7b},
	{0x12fb14e99e4cedcc, 0xb3ece39c2435e342, 0x00050467dd07673a},
	{0x8a854bfd9a7c24e9, 0xd3df685d75716bd6, 0x0001b944783c26ee},
	{0x571fa715c67283de, 0x9aa388c0d0135600, 0x000e0157ed3864a0},
	{0x81acf3ddb3e9c99f, 0xbdd9c4a31224f94b, 0x000d214a0ba770e9},
	{0x44420c1145a7fc31, 0xb4701c038b047291, 0x0026fc43ea75d51f},
	{0x5af73f2360290fbc, 0x214672c5e884e85f, 0x001b6f5d7dd36646},
	{0x3a433933fecafdb1, 0x3e34aafaa2aef210, 0x003138647e8e9716},
	{0x702315a08aae89e4, 0x2d2df36566315898, 0x0021330986ef1c2c},
	{0xb19a54342d33dc56, 0x0b9adbbd5d73d392, 0x0037ac11cd37a063},
	{0x743f50a52851779a, 0x05d7552d7a1f2862, 0x000cf39933cfd2f5},
	{0x89475962a76f7036, 0xa1b6876991e23566, 0x003063475c337ac6},
	{0xce774003c6a97007, 0xd0fa317f3f74eed7, 0x000bfc6c41a3149c},
	{0x79918980a5c18262, 0x853a8775aeddf867, 0x0025f85b38c31ccf},
	{0x3416d23fad18311a, 0xcafb35c26d45522a, 0x002d6d9d1d46618d},
	{0x2918f2736c201d82, 0x5e901fdbda39e549, 0x00106309e60de2ac},
	{0x22a9856fea130404, 0x8eb018dd79673350, 0x00033ba30a581ca8},
	{0xd38f80103361eaad, 0xf3d492b3c4af2714, 0x001483e19ce56c40},
	{0x00a342881c8cc888, 0x6a3a8891841fc5c6, 0x00356aab1eafec15},
	{0x36f5056eeeb9ac8e, 0xe0bf9ff2ad503f0c, 0x0028f5c7c4a64a81},
	{0x2c09eed4fd91a4ef, 0x5a233d8f0fc32b03, 0x0026b7b7f7b7d87a},
	{0x99052ab4feea0db9, 0xcf4458c19aff48c4, 0x002ace0d7d30e382},
	{0x7b541b1a69aa1741, 0xf138d7a484f35eb1, 0x000b61fe95faa71d},
	{0xc1a09b0df996dcf0, 0x7dc3e221e6e89e27, 0x003a5c123678d63b},
	{0x3946f09d3a934dbb, 0x690b4495da55dd22, 0x001c226feed0be30},
	{0xf4f13fbef7329120, 0xaf955fe5aa46cf52, 0x00309a0c4766fc78},
	{0xb8260aeb9383a9aa, 0x7c11f8bcb5f26817, 0x0017fa74f4484781},
	{0xe153f7b3f1fe3e44, 0x4db939615bd842b4, 0x0010d42ee3e8f309},
	{0xbc79283dad8f8efa, 0x1c02e9f07560a065, 0x00363cdd2847c8fa},
	{0x05db2942da65d79d, 0x724b9db62e3393e0, 0x0010b6b92f7edfc5},
	{0x291b9a4920baa6e6, 0x86af6e9048cbccf8, 0x001d8a493aaffb05},
	{0x724668928b5fce7a, 0x30d09c474e7de799, 0x0028f942236fd04a},
	{0x3cca8e31ba4d0a32, 0x0d4c800d08640ca0, 0x001a089ca03bfc07},
	{0xd40d10b25f4cd92d, 0x65d063b7785db096, 0x000df75a912c3206},
	{0x7670c97a789bbda1, 0xb3cac508eaf19607, 0x000a4a4070c952ad},
	{0x6c73158f0d45360f, 0x94fc0c4a992b21bd, 0x002edfc8a02af341},
	{0xbf1fcf906b5648d9, 0x77dff194fc913ac5, 0x000a000856bb7603},
	{0x3f656963e2a793b1, 0x5e74f733866156c8, 0x002ba58bb5d575fb},
	{0x707bc8b0d83a0ae0, 0xe005ed97298c8451, 0x0031b34257141fdd},
	{0x2892fe09f1884cdd, 0x70fba7cf3e527479, 0x0004af832f3f3417},
	{0x19198e4ab734ddb2, 0x4872059f0d23e2fd, 0x000eb7389c3e7636},
	{0xfb725974e52567ba, 0x0224ad453225b2f8, 0x000e8b02e8a0b10d},
	{0xfbb7b437c41c6fa7, 0x1ee7747ecaf313cf, 0x002569f74d0601b0},
	{0x37f28794ffc17195, 0xeef827eea7c2dfaa, 0x000166055866e777},
	{0x458f015a239514ba, 0xd5bd25268bc6dd4a, 0x0017f59114dd950b},
	{0x6d7de388c59e8d44, 0x7ab754ec27526839, 0x003397543afc81ff},
	{0xbb5c57de9aef3605, 0x2c21fc9ef5053190, 0x003acaa3538ba9b0},
	{0x06f3fb9a62c48f84, 0x6b6d04e2455b31a4, 0x0020848de20b647d},
	{0x742a8940ac9b5677, 0x1bf448069f71d73e, 0x0002a70c587fb679},
	{0x08fcaa91e5028100, 0x9b9060e6b42ef6e2, 0x001dbc467447ad9b},
	{0x9a2275f093ca0000, 0x62c54153aad9fe65, 0x0010b059db72a3ef},
	{0x95d84a2164000000, 0x3a4109947660d588, 0x001ab1193f1fc4a7},
	{0xf4a080e800000000, 0x4c26acdf5730c36e, 0x00076587e831fc4c},
	{0xa947100000000000, 0xfbdaeb2c9d55b349, 0x000ba35ecc86ed31},
	{0xb2a0000000000000, 0x7eaa9a0573cb5501, 0x001f6a3fac46669f},
	{0x4000000000000000, 0x867fd246f843ab32, 0x001064380b1d5e12},
	{0x0000000000000000, 0xb5d4f10ef6102680, 0x0006d670085efc7b},
	{0x0000000000000000, 0x7beb8cbf67610000, 0x00161d9f588d1321},
	{0x0000000000000000, 0xa50692ec8a000000, 0x0020d8b58acc40ea},
	{0x0000000000000000, 0x1607a8e400000000, 0x002f8e764c68f008},
	{0x0000000000000000, 0x306be80000000000, 0x00186ec50f5765ea},
	{0x0000000000000000, 0xb510000000000000, 0x001459553e74c996},
	{0x0000000000000000, 0xa000000000000000, 0x001b31132774867e},
	{0x0000000000000000, 0x0000000000000000, 0x001b2174092c2a40},
	{0x0000000000000000, 0x0000000000000000, 0x000a487103d68000},
	{0x0000000001e49404, 0x0000000000000000, 0x0000000000000000},
	{0x0070d31c29dde933, 0x0000000000000000, 0x0000000000000000},
	{0x832b8d45f18e7066, 0x00000000001a44df, 0x0000000000000000},
	{0x783854317c076239, 0x00061dc1ac084f42, 0x0000000000000000},
	{0x7fc95bf1d2a4bbdc, 0x5ca239028e3bc026, 0x0000000000016c8e},
	{0xed917e9aa63f650b, 0xe34d59759c3aa826, 0x000054e13ca571d1},
	{0x9b3ea59a1bd855e0, 0xf4584d5068da2928, 0x0026854463752d80},
	{0x91cb35e6e2a177b0, 0xb78acd7542aede59, 0x001b48568dcb17bd},
	{0xfba7ba8aedd00b31, 0x2506f10e61ee36b4, 0x002f4945422919ad},
	{0x9593a16101f2ff30, 0xcd6e292e9609d976, 0x000991c4c7f37ef2},
	{0xed24b887370669e0, 0x6f19496eeb669306, 0x0038b17c75938ddb},
	{0x24a045ad2ee13ee1, 0xb0ebc555fad595bd, 0x00225ae9568acecc},
	{0x4af6c3fb542c76d1, 0x903df5eb3360375f, 0x002051971b1647e9},
	{0x883b328cb133b942, 0x085fab2e314b28c3, 0x0005300bab7d58c4},
	{0x8b5c88a25f0b8b2f, 0x1c386c80e42fe1c1, 0x001d2f3f7be5c49c},
	{0xa164f5049801aee3, 0x7fbe01e331aee11e, 0x00357f3d8d8d2937},
	{0x1d217442d7a61274, 0x6c9c76497941868d, 0x0020ddd9f8596d88},
	{0xbda5be50c9b62c63, 0x8c7b051b2ac594e7, 0x0014d250e5870b15},
	{0xe34212fb14e99e4d, 0x673ab3ece39c2435, 0x001f71353115dd07},
	{0x6bd68a854bfd9a7d, 0x26eed3df685d7571, 0x00051728eba6783c},
	{0x5600571fa715c673, 0x64a09aa388c0d013, 0x0026c25d8c07ed38},
	{0xf94b81acf3ddb3ea, 0x70e9bdd9c4a31224, 0x0001d876f44c0ba7},
	{0x729144420c1145a8, 0xd51fb4701c038b04, 0x0011b4aa9af1ea75},
	{0xe85f5af73f23602a, 0x6646214672c5e884, 0x0038534f16017dd3},
	{0xf2103a433933fecb, 0x97163e34aafaa2ae, 0x000058e697067e8e},
	{0x5898702315a08aaf, 0x1c2c2d2df3656631, 0x000183181e7586ef},
	{0xd392b19a54342d34, 0xa0630b9adbbd5d73, 0x001b5d2903cdcd37},
	{0x2862743f50a52852, 0xd2f505d7552d7a1f, 0x002feabba95b33cf},
	{0x356689475962a770, 0x7ac6a1b6876991e2, 0x00153c1607855c33},
	{0xeed7ce774003c6aa, 0x149cd0fa317f3f74, 0x001f0ce28f0441a3},
	{0xf86779918980a5c2, 0x1ccf853a8775aedd, 0x0000fdb36da538c3},
	{0x522a3416d23fad19, 0x618dcafb35c26d45, 0x002677fb7bcd1d46},
	{0xe5492918f2736c21, 0xe2ac5e901fdbda39, 0x002fc1c4adebe60d},
	{0x335022a9856fea14, 0x1ca88eb018dd7967, 0x0036eca7bb1f0a58},
	{0x2714d38f80103362, 0x6c40f3d492b3c4af, 0x00073a2705c59ce5},
	{0xc5c600a342881c8d, 0xec156a3a8891841f, 0x002e02a52fc31eaf},
	{0x3f0c36f5056eeeba, 0x4a81e0bf9ff2ad50, 0x002d6e0cf773c4a6},
	{0x2b032c09eed4fd92, 0xd87a5a233d8f0fc3, 0x001af451f85ff7b7},
	{0x48c499052ab4feeb, 0xe382cf4458c19aff, 0x0016581e1cf37d30},
	{0x5eb17b541b1a69ab, 0xa71df138d7a484f3, 0x0038b113b4a095fa},
	{0x9e27c1a09b0df997, 0xd63b7dc3e221e6e8, 0x002563a9b3a43678},
	{0xdd223946f09d3a94, 0xbe30690b4495da55, 0x00263bd8310beed0},
	{0xcf52f4f13fbef733, 0xfc78af955fe5aa46, 0x0002c7412fd84766},
	{0x6817b8260aeb9384, 0x47817c11f8bcb5f2, 0x00325b3a587af448},
	{0x42b4e153f7b3f1ff, 0xf3094db939615bd8, 0x001ca0a4a0b6e3e8},
	{0xa065bc79283dad90, 0xc8fa1c02e9f07560, 0x002a951c19fb2847},
	{0x93e005db2942da66, 0xdfc5724b9db62e33, 0x003a7a24f4492f7e},
	{0xccf8291b9a4920bb, 0xfb0586af6e9048cb, 0x00110a328f5f3aaf},
	{0xe799724668928b60, 0xd04a30d09c474e7d, 0x00162c1b0106236f},
	{0x0ca03cca8e31ba4e, 0xfc070d4c800d0864, 0x00016de0ee3aa03b},
	{0xb096d40d10b25f4d, 0x320665d063b7785d, 0x000da660799a912c},
	{0x96077670c97a789c, 0x52adb3cac508eaf1, 0x0023fcea7aaa70c9},
	{0x21bd6c73158f0d46, 0xf34194fc0c4a992b, 0x0027af0cbc28a02a},
	{0x3ac5bf1fcf906b57, 0x760377dff194fc91, 0x0009757a4e4856bb},
	{0x56c83f656963e2a8, 0x75fb5e74f7338661, 0x0010d7ba7567b5d5},
	{0x8451707bc8b0d83b, 0x1fdde005ed97298c, 0x0018259d6a145714},
	{0x74792892fe09f189, 0x341770fba7cf3e52, 0x0004bc5e12292f3f},
	{0xe2fd19198e4ab735, 0x76364872059f0d23, 0x000996ca7c4e9c3e},
	{0xb2f8fb725974e526, 0xb10d0224ad453225, 0x00124d8a6a1ae8a0},
	{0x13cffbb7b437c41d, 0x01b01ee7747ecaf3, 0x000643e235074d06},
	{0xdfaa37f28794ffc2, 0xe777eef827eea7c2, 0x0001b32a7ac75866},
	{0xdd4a458f015a2396, 0x950bd5bd25268bc6, 0x002e69e8310114dd},
	{0x68396d7de388c59f, 0x81ff7ab754ec2752, 0x00004076791c3afc},
	{0x3190bb5c57de9af0, 0xa9b02c21fc9ef505, 0x000692a9f467538b},
	{0x31a406f3fb9a62c5, 0x647d6b6d04e2455b, 0x00180ebafa0be20b},
	{0xd73e742a8940ac9c, 0xb6791bf448069f71, 0x0002c447fb60587f},
	{0xf6e208fcaa91e503, 0xad9b9b9060e6b42e, 0x00166ea6b1b67447},
	{0xfe659a2275f093ca, 0xa3ef62c54153aad9, 0x002a7b1e6fe1db72},
	{0xd58895d84a216400, 0xc4a73a4109947660, 0x00349623a5e73f1f},
	{0xc36ef4a080e80000, 0xfc4c4c26acdf5730, 0x0035d75ec33de831},
	{0xb349a94710000000, 0xed31fbdaeb2c9d55, 0x000e69f20c6ecc86},
	{0x5501b2a000000000, 0x669f7eaa9a0573cb, 0x0019cc218f37ac46},
	{0xab32400000000000, 0x5e12867fd246f843, 0x000cf65dc9f00b1d},
	{0x2680000000000000, 0xfc7bb5d4f10ef610, 0x0037e3b3dd1e085e},
	{0x0000000000000000, 0x13217beb8cbf6761, 0x0006fe169fef588d},
	{0x0000000000000000, 0x40eaa50692ec8a00, 0x0037ba20a4258acc},
	{0x0000000000000000, 0xf0081607a8e40000, 0x0008bdb0315a4c68},
	{0x0000000000000000, 0x65ea306be8000000, 0x0015063566bd0f57},
	{0x0000000000000000, 0xc996b51000000000, 0x002c04d98d2b3e74},
	{0x0000000000000000, 0x867ea00000000000, 0x000a118a9bff2774},
	{0x0000000000000000, 0x2a40000000000000, 0x003b685eec3a092c},
	{0x0000000000000000, 0x8000000000000000, 0x000d83347d8b03d6},
	{0x0000000000000000, 0x0000000000000000, 0x00205df06f904100},
	{0x00000000000001e5, 0x0000000000000000, 0x0000000000000000},
	{0x00000070d31c29de, 0x0000000000000000, 0x0000000000000000},
	{0x44df832b8d45f18f, 0x000000000000001a, 0x0000000000000000},
	{0x4f42783854317c08, 0x000000061dc1ac08, 0x0000000000000000},
	{0xc0267fc95bf1d2a5, 0x6c8e5ca239028e3b, 0x0000000000000001},
	{0xa826ed917e9aa640, 0x71d1e34d59759c3a, 0x0000000054e13ca5},
	{0x29289b3ea59a1bd9, 0x2d80f4584d5068da, 0x0034712a569c6375},
	{0xde5991cb35e6e2a2, 0x17bdb78acd7542ae, 0x0024697b3c748dcb},
	{0x36b4fba7ba8aedd1, 0x19ad2506f10e61ee, 0x001b232712874229},
	{0xd9769593a16101f3, 0x7ef2cd6e292e9609, 0x001f7e07ffd8c7f3},
	{0x9306ed24b8873707, 0x8ddb6f19496eeb66, 0x0032792874827593},
	{0x95bd24a045ad2ee2, 0xceccb0ebc555fad5, 0x001e5ffaad3b568a},
	{0x375f4af6c3fb542d, 0x47e9903df5eb3360, 0x000dd0d2df731b16},
	{0x28c3883b328cb134, 0x58c4085fab2e314b, 0x001accd74159ab7d},
	{0xe1c18b5c88a25f0c, 0xc49c1c386c80e42f, 0x0014e0bdce2d7be5},
	{0xe11ea164f5049802, 0x29377fbe01e331ae, 0x000a970e604b8d8d},
	{0x868d1d217442d7a7, 0x6d886c9c76497941, 0x0011974e4d1bf859},
	{0x94e7bda5be50c9b7, 0x0b158c7b051b2ac5, 0x000683261400e587},
	{0x2435e34212fb14ea, 0xdd07673ab3ece39c, 0x00003570e7e73115},
	{0x75716bd68a854bfe, 0x783c26eed3df685d, 0x0035d419fdd2eba6},
	{0xd0135600571fa716, 0xed3864a09aa388c0, 0x00311bd78dcb8c07},
	{0x1224f94b81acf3de, 0x0ba770e9bdd9c4a3, 0x002f6458aceef44c},
	{0x8b04729144420c12, 0xea75d51fb4701c03, 0x0037a2c909329af1},
	{0xe884e85f5af73f24, 0x7dd36646214672c5, 0x000bc84ee4d31601},
	{0xa2aef2103a433934, 0x7e8e97163e34aafa, 0x003125b424429706},
	{0x66315898702315a1, 0x86ef1c2c2d2df365, 0x000f8111e43e1e75},
	{0x5d73d392b19a5435, 0xcd37a0630b9adbbd, 0x000e76946cd503cd},
	{0x7a1f2862743f50a6, 0x33cfd2f505d7552d, 0x003198accd19a95b},
	{0x91e2356689475963, 0x5c337ac6a1b68769, 0x0005f98c25700785},
	{0x3f74eed7ce774004, 0x41a3149cd0fa317f, 0x001a1578a8688f04},
	{0xaeddf86779918981, 0x38c31ccf853a8775, 0x0018582e84896da5},
	{0x6d45522a3416d240, 0x1d46618dcafb35c2, 0x001fff5d79fd7bcd},
	{0xda39e5492918f274, 0xe60de2ac5e901fdb, 0x003b04ccc2d2adeb},
	{0x7967335022a98570, 0x0a581ca88eb018dd, 0x00310d783b29bb1f},
	{0xc4af2714d38f8011, 0x9ce56c40f3d492b3, 0x0009b75ba5b505c5},
	{0x841fc5c600a34289, 0x1eafec156a3a8891, 0x002a25c8da972fc3},
	{0xad503f0c36f5056f, 0xc4a64a81e0bf9ff2, 0x0023336bff22f773},
	{0x0fc32b032c09eed5, 0xf7b7d87a5a233d8f, 0x0008242c2137f85f},
	{0x9aff48c499052ab5, 0x7d30e382cf4458c1, 0x000d0815b1ce1cf3},
	{0x84f35eb17b541b1b, 0x95faa71df138d7a4, 0x002ffd4c2b2bb4a0},
	{0xe6e89e27c1a09b0e, 0x3678d63b7dc3e221, 0x000a2d0e27b1b3a4},
	{0xda55dd223946f09e, 0xeed0be30690b4495, 0x00295fd92116310b},
	{0xaa46cf52f4f13fbf, 0x4766fc78af955fe5, 0x00052ab8c3eb2fd8},
	{0xb5f26817b8260aec, 0xf44847817c11f8bc, 0x0036c23b3450587a},
	{0x5bd842b4e153f7b4, 0xe3e8f3094db93961, 0x0012b4f8f614a0b6},
	{0x7560a065bc79283e, 0x2847c8fa1c02e9f0, 0x0004cd831b5c19fb},
	{0x2e3393e005db2943, 0x2f7edfc5724b9db6, 0x001571ad2fdef449},
	{0x48cbccf8291b9a4a, 0x3aaffb0586af6e90, 0x0033e91bbeba8f5f},
	{0x4e7de79972466893, 0x236fd04a30d09c47, 0x002b6fd866f10106},
	{0x08640ca03cca8e32, 0xa03bfc070d4c800d, 0x00381cf532aaee3a},
	{0x785db096d40d10b3, 0x912c320665d063b7, 0x0027cc41b22c799a},
	{0xeaf196077670c97b, 0x70c952adb3cac508, 0x000a5aeade647aaa},
	{0x992b21bd6c731590, 0xa02af34194fc0c4a, 0x001765065b50bc28},
	{0xfc913ac5bf1fcf91, 0x56bb760377dff194, 0x0012cc2e41d24e48},
	{0x866156c83f656964, 0xb5d575fb5e74f733, 0x0030f733b5467567},
	{0x298c8451707bc8b1, 0x57141fdde005ed97, 0x001067a91fef6a14},
	{0x3e5274792892fe0a, 0x2f3f341770fba7cf, 0x0037be356a021229},
	{0x0d23e2fd19198e4b, 0x9c3e76364872059f, 0x00007b700cfe7c4e},
	{0x3225b2f8fb725975, 0xe8a0b10d0224ad45, 0x003b4085b3626a1a},
	{0xcaf313cffbb7b438, 0x4d0601b01ee7747e, 0x0016e9f5af863507},
	{0xa7c2dfaa37f28795, 0x5866e777eef827ee, 0x001f3f5e7afc7ac7},
	{0x8bc6dd4a458f015b, 0x14dd950bd5bd2526, 0x003ac8f5062c3101},
	{0x275268396d7de389, 0x3afc81ff7ab754ec, 0x000a4a039920791c},
	{0xf5053190bb5c57df, 0x538ba9b02c21fc9e, 0x00078f8bfc23f467},
	{0x455b31a406f3fb9b, 0xe20b647d6b6d04e2, 0x00085f113542fa0b},
	{0x9f71d73e742a8941, 0x587fb6791bf44806, 0x000f9820018bfb60},
	{0xb42ef6e208fcaa92, 0x7447ad9b9b9060e6, 0x00209792e0b4b1b6},
	{0xaad9fe659a2275f1, 0xdb72a3ef62c54153, 0x002a123688c86fe1},
	{0x7660d58895d84a22, 0x3f1fc4a73a410994, 0x002eaafa83b9a5e7},
	{0x5730c36ef4a080e8, 0xe831fc4c4c26acdf, 0x002b397c9590c33d},
	{0x9d55b349a9471000, 0xcc86ed31fbdaeb2c, 0x0021b486f1d00c6e},
	{0x73cb5501b2a00000, 0xac46669f7eaa9a05, 0x003070a92d998f37},
	{0xf843ab3240000000, 0x0b1d5e12867fd246, 0x0023c0db2733c9f0},
	{0xf610268000000000, 0x085efc7bb5d4f10e, 0x000c0edaaa4ddd1e},
	{0x6761000000000000, 0x588d13217beb8cbf, 0x0012210a60789fef},
	{0x8a00000000000000, 0x8acc40eaa50692ec, 0x001c15cb8d96a425},
	{0x0000000000000000, 0x4c68f0081607a8e4, 0x002312ea4318315a},
	{0x0000000000000000, 0x0f5765ea306be800, 0x0005a20096df66bd},
	{0x0000000000000000, 0x3e74c996b5100000, 0x003403c1a7558d2b},
	{0x0000000000000000, 0x2774867ea0000000, 0x0013eb4364cc9bff},
	{0x0000000000000000, 0x092c2a4000000000, 0x002fa3ab18acec3a},
	{0x0000000000000000, 0x03d6800000000000, 0x002842ffed6c7d8b},
	{0x0000000000000000, 0x4100000000000000, 0x001942882a926f90},
	{0x0000000000000000, 0x0000000000000000, 0x00221840e7c9ed4a},
	{0x0000000000000000, 0x0000000000000000, 0x002f03c821c06400},
	{0x000000000070d31d, 0x0000000000000000, 0x0000000000000000},
	{0x001a44df832b8d46, 0x0000000000000000, 0x0000000000000000},
	{0xac084f4278385432, 0x0000000000061dc1, 0x0000000000000000},
	{0x8e3bc0267fc95bf2, 0x00016c8e5ca23902, 0x0000000000000000},
	{0x9c3aa826ed917e9b, 0x3ca571d1e34d5975, 0x00000000000054e1},
	{0x68da29289b3ea59b, 0x63752d80f4584d50, 0x000013c33b72569c},
	{0x42aede5991cb35e7, 0x8dcb17bdb78acd75, 0x001a9f185d573c74},
	{0x61ee36b4fba7ba8b, 0x422919ad2506f10e, 0x00144fae107f1287},
	{0x9609d9769593a162, 0xc7f37ef2cd6e292e, 0x001d961a963bffd8},
	{0xeb669306ed24b888, 0x75938ddb6f19496e, 0x000df83e365e7482},
	{0xfad595bd24a045ae, 0x568aceccb0ebc555, 0x0015fdf6af82ad3b},
	{0x3360375f4af6c3fc, 0x1b1647e9903df5eb, 0x001e6cefff54df73},
	{0x314b28c3883b328d, 0xab7d58c4085fab2e, 0x0013c2d0eacd4159},
	{0xe42fe1c18b5c88a3, 0x7be5c49c1c386c80, 0x002fca2af007ce2d},
	{0x31aee11ea164f505, 0x8d8d29377fbe01e3, 0x0001d13cab9a604b},
	{0x7941868d1d217443, 0xf8596d886c9c7649, 0x0023f189270e4d1b},
	{0x2ac594e7bda5be51, 0xe5870b158c7b051b, 0x0003546b1de81400},
	{0xe39c2435e34212fc, 0x3115dd07673ab3ec, 0x003608ef5d38e7e7},
	{0x685d75716bd68a86, 0xeba6783c26eed3df, 0x000d3fdab05ffdd2},
	{0x88c0d01356005720, 0x8c07ed3864a09aa3, 0x0016598a0b798dcb},
	{0xc4a31224f94b81ad, 0xf44c0ba770e9bdd9, 0x001c4d2d1f9aacee},
	{0x1c038b0472914443, 0x9af1ea75d51fb470, 0x0024036126810932},
	{0x72c5e884e85f5af8, 0x16017dd366462146, 0x001e0b240368e4d3},
	{0xaafaa2aef2103a44, 0x97067e8e97163e34, 0x00186c29119c2442},
	{0xf365663158987024, 0x1e7586ef1c2c2d2d, 0x00245ac45d79e43e},
	{0xdbbd5d73d392b19b, 0x03cdcd37a0630b9a, 0x001c614dcc7c6cd5},
	{0x552d7a1f28627440, 0xa95b33cfd2f505d7, 0x001cf850bde4cd19},
	{0x876991e235668948, 0x07855c337ac6a1b6, 0x0035459cd54e2570},
	{0x317f3f74eed7ce78, 0x8f0441a3149cd0fa, 0x001231e100aaa868},
	{0x8775aeddf8677992, 0x6da538c31ccf853a, 0x0027bc0010be8489},
	{0x35c26d45522a3417, 0x7bcd1d46618dcafb, 0x002c5bbdbb8579fd},
	{0x1fdbda39e5492919, 0xadebe60de2ac5e90, 0x001f13d22046c2d2},
	{0x18dd7967335022aa, 0xbb1f0a581ca88eb0, 0x001079af968c3b29},
	{0x92b3c4af2714d390, 0x05c59ce56c40f3d4, 0x0020a66cdbe9a5b5},
	{0x8891841fc5c600a4, 0x2fc31eafec156a3a, 0x00366676c3fada97},
	{0x9ff2ad503f0c36f6, 0xf773c4a64a81e0bf, 0x003a680e476fff22},
	{0x3d8f0fc32b032c0a, 0xf85ff7b7d87a5a23, 0x001a1384e9622137},
	{0x58c19aff48c49906, 0x1cf37d30e382cf44, 0x0016d8fd501fb1ce},
	{0xd7a484f35eb17b55, 0xb4a095faa71df138, 0x0007612478f62b2b},
	{0xe221e6e89e27c1a1, 0xb3a43678d63b7dc3, 0x003950cb48fc27b1},
	{0x4495da55dd223947, 0x310beed0be30690b, 0x003ab59ccc9f2116},
	{0x5fe5aa46cf52f4f2, 0x2fd84766fc78af95, 0x00250cd794c2c3eb},
	{0xf8bcb5f26817b827, 0x587af44847817c11, 0x002d58eabe193450},
	{0x39615bd842b4e154, 0xa0b6e3e8f3094db9, 0x0005de4be000f614},
	{0xe9f07560a065bc7a, 0x19fb2847c8fa1c02, 0x0000394b8b9f1b5c},
	{0x9db62e3393e005dc, 0xf4492f7edfc5724b, 0x00250b823afb2fde},
	{0x6e9048cbccf8291c, 0x8f5f3aaffb0586af, 0x003a7be96231beba},
	{0x9c474e7de7997247, 0x0106236fd04a30d0, 0x000b9508fbc466f1},
	{0x800d08640ca03ccb, 0xee3aa03bfc070d4c, 0x002dba7a717132aa},
	{0x63b7785db096d40e, 0x799a912c320665d0, 0x001a5b1f31b5b22c},
	{0xc508eaf196077671, 0x7aaa70c952adb3ca, 0x002a4deccd5ede64},
	{0x0c4a992b21bd6c74, 0xbc28a02af34194fc, 0x0016169dcc325b50},
	{0xf194fc913ac5bf20, 0x4e4856bb760377df, 0x000bb97e45fc41d2},
	{0xf733866156c83f66, 0x7567b5d575fb5e74, 0x003abbb21c7db546},
	{0xed97298c8451707c, 0x6a1457141fdde005, 0x001d44c97a7b1fef},
	{0xa7cf3e5274792893, 0x12292f3f341770fb, 0x001caace8aab6a02},
	{0x059f0d23e2fd191a, 0x7c4e9c3e76364872, 0x0027e91381140cfe},
	{0xad453225b2f8fb73, 0x6a1ae8a0b10d0224, 0x0004ab1e49fdb362},
	{0x747ecaf313cffbb8, 0x35074d0601b01ee7, 0x003b11bdc733af86},
	{0x27eea7c2dfaa37f3, 0x7ac75866e777eef8, 0x000c08b44d747afc},
	{0x25268bc6dd4a4590, 0x310114dd950bd5bd, 0x001b1ec61539062c},
	{0x54ec275268396d7e, 0x791c3afc81ff7ab7, 0x000d46e6e4bf9920},
	{0xfc9ef5053190bb5d, 0xf467538ba9b02c21, 0x002c9c23c845fc23},
	{0x04e2455b31a406f4, 0xfa0be20b647d6b6d, 0x00104b6d2fe93542},
	{0x48069f71d73e742b, 0xfb60587fb6791bf4, 0x00364c487df2018b},
	{0x60e6b42ef6e208fd, 0xb1b67447ad9b9b90, 0x003858af265ce0b4},
	{0x4153aad9fe659a23, 0x6fe1db72a3ef62c5, 0x00159ff21af688c8},
	{0x09947660d58895d9, 0xa5e73f1fc4a73a41, 0x00396697024a83b9},
	{0xacdf5730c36ef4a1, 0xc33de831fc4c4c26, 0x00115969d2da9590},
	{0xeb2c9d55b349a948, 0x0c6ecc86ed31fbda, 0x0032e4a2d018f1d0},
	{0x9a0573cb5501b2a0, 0x8f37ac46669f7eaa, 0x0005ced018d32d99},
	{0xd246f843ab324000, 0xc9f00b1d5e12867f, 0x00312b32745d2733},
	{0xf10ef61026800000, 0xdd1e085efc7bb5d4, 0x0015b05c05a0aa4d},
	{0x8cbf676100000000, 0x9fef588d13217beb, 0x002568652b2e6078},
	{0x92ec8a0000000000, 0xa4258acc40eaa506, 0x000acc466d8b8d96},
	{0xa8e4000000000000, 0x315a4c68f0081607, 0x00207e03022c4318},
	{0xe800000000000000, 0x66bd0f5765ea306b, 0x000a4e39dcde96df},
	{0x0000000000000000, 0x8d2b3e74c996b510, 0x0033d35be21da755},
	{0x0000000000000000, 0x9bff2774867ea000, 0x0006e77ec70964cc},
	{0x0000000000000000, 0xec3a092c2a400000, 0x00022fe9349318ac},
	{0x0000000000000000, 0x7d8b03d680000000, 0x00223fa0c3efed6c},
	{0x0000000000000000, 0x6f90410000000000, 0x0037dcca258a2a92},
	{0x0000000000000000, 0xed4a000000000000, 0x00202b5a6164e7c9},
	{0x0000000000000000, 0x6400000000000000, 0x00177e6e980e21c0},
	{0x0000000000000000, 0x0000000000000000, 0x00034a52cb69f6e8},
	{0x0000000000000000, 0x0000000000000000, 0x0018abf99c631000},
	{0x0000000000000071, 0x0000000000000000, 0x0000000000000000},
	{0x0000001a44df832c, 0x0000000000000000, 0x0000000000000000},
	{0x1dc1ac084f427839, 0x0000000000000006, 0x0000000000000000},
	{0x39028e3bc0267fca, 0x000000016c8e5ca2, 0x0000000000000000},
	{0x59759c3aa826ed92, 0x54e13ca571d1e34d, 0x0000000000000000},
	{0x4d5068da29289b3f, 0x569c63752d80f458, 0x0000000013c33b72},
	{0xcd7542aede5991cc, 0x3c748dcb17bdb78a, 0x002d74bf29a65d57},
	{0xf10e61ee36b4fba8, 0x1287422919ad2506, 0x0026bc1a8710107f},
	{0x292e9609d9769594, 0xffd8c7f37ef2cd6e, 0x0003bd83e2ba963b},
	{0x496eeb669306ed25, 0x748275938ddb6f19, 0x002b71716e9a365e},
	{0xc555fad595bd24a1, 0xad3b568aceccb0eb, 0x0023e7c62892af82},
	{0xf5eb3360375f4af7, 0xdf731b1647e9903d, 0x002227247105ff54},
	{0xab2e314b28c3883c, 0x4159ab7d58c4085f, 0x00016578e406eacd},
	{0x6c80e42fe1c18b5d, 0xce2d7be5c49c1c38, 0x00019c4c02cef007},
	{0x01e331aee11ea165, 0x604b8d8d29377fbe, 0x00302e717a9cab9a},
	{0x76497941868d1d22, 0x4d1bf8596d886c9c, 0x00247a476e77270e},
	{0x051b2ac594e7bda6, 0x1400e5870b158c7b, 0x001bbe0bcf311de8},
	{0xb3ece39c2435e343, 0xe7e73115dd07673a, 0x000b6f973bd15d38},
	{0xd3df685d75716bd7, 0xfdd2eba6783c26ee, 0x0030bf13653cb05f},
	{0x9aa388c0d0135601, 0x8dcb8c07ed3864a0, 0x000e21581c6a0b79},
	{0xbdd9c4a31224f94c, 0xaceef44c0ba770e9, 0x0018b0c397db1f9a},
	{0xb4701c038b047292, 0x09329af1ea75d51f, 0x003304c68fd72681},
	{0x214672c5e884e860, 0xe4d316017dd36646, 0x003217f6ab200368},
	{0x3e34aafaa2aef211, 0x244297067e8e9716, 0x000774247c87119c},
	{0x2d2df36566315899, 0xe43e1e7586ef1c2c, 0x001f72ba282e5d79},
	{0x0b9adbbd5d73d393, 0x6cd503cdcd37a063, 0x000acb93e8afcc7c},
	{0x05d7552d7a1f2863, 0xcd19a95b33cfd2f5, 0x0028ee6c6748bde4},
	{0xa1b6876991e23567, 0x257007855c337ac6, 0x0010efbf5cbed54e},
	{0xd0fa317f3f74eed8, 0xa8688f0441a3149c, 0x002c6e8be7f300aa},
	{0x853a8775aeddf868, 0x84896da538c31ccf, 0x003894157a0010be},
	{0xcafb35c26d45522b, 0x79fd7bcd1d46618d, 0x000003e6085dbb85},
	{0x5e901fdbda39e54a, 0xc2d2adebe60de2ac, 0x0015d2e487602046},
	{0x8eb018dd79673351, 0x3b29bb1f0a581ca8, 0x0016618f92ef968c},
	{0xf3d492b3c4af2715, 0xa5b505c59ce56c40, 0x0037c88feec8dbe9},
	{0x6a3a8891841fc5c7, 0xda972fc31eafec15, 0x002ec421a144c3fa},
	{0xe0bf9ff2ad503f0d, 0xff22f773c4a64a81, 0x001002bef7ec476f},
	{0x5a233d8f0fc32b04, 0x2137f85ff7b7d87a, 0x00370354398ae962},
	{0xcf4458c19aff48c5, 0xb1ce1cf37d30e382, 0x002057c79ed7501f},
	{0xf138d7a484f35eb2, 0x2b2bb4a095faa71d, 0x003221a7664478f6},
	{0x7dc3e221e6e89e28, 0x27b1b3a43678d63b, 0x000ff147877b48fc},
	{0x690b4495da55dd23, 0x2116310beed0be30, 0x001cb45d4c6ccc9f},
	{0xaf955fe5aa46cf53, 0xc3eb2fd84766fc78, 0x001954f19dcf94c2},
	{0x7c11f8bcb5f26818, 0x3450587af4484781, 0x003054cc2bb2be19},
	{0x4db939615bd842b5, 0xf614a0b6e3e8f309, 0x00299de33437e000},
	{0x1c02e9f07560a066, 0x1b5c19fb2847c8fa, 0x000d0269100b8b9f},
	{0x724b9db62e3393e1, 0x2fdef4492f7edfc5, 0x0002b028c5303afb},
	{0x86af6e9048cbccf9, 0xbeba8f5f3aaffb05, 0x000b3ac16dad6231},
	{0x30d09c474e7de79a, 0x66f10106236fd04a, 0x00285e77585cfbc4},
	{0x0d4c800d08640ca1, 0x32aaee3aa03bfc07, 0x0015a63f16887171},
	{0x65d063b7785db097, 0xb22c799a912c3206, 0x001fc4a4fe4931b5},
	{0xb3cac508eaf19608, 0xde647aaa70c952ad, 0x00110ab68896cd5e},
	{0x94fc0c4a992b21be, 0x5b50bc28a02af341, 0x00231c83665fcc32},
	{0x77dff194fc913ac6, 0x41d24e4856bb7603, 0x00164dfc087645fc},
	{0x5e74f733866156c9, 0xb5467567b5d575fb, 0x001b89a490241c7d},
	{0xe005ed97298c8452, 0x1fef6a1457141fdd, 0x000868669ae17a7b},
	{0x70fba7cf3e52747a, 0x6a0212292f3f3417, 0x00347f8ff9128aab},
	{0x4872059f0d23e2fe, 0x0cfe7c4e9c3e7636, 0x0004512b8df78114},
	{0x0224ad453225b2f9, 0xb3626a1ae8a0b10d, 0x0039a06690e849fd},
	{0x1ee7747ecaf313d0, 0xaf8635074d0601b0, 0x003615814557c733},
	{0xeef827eea7c2dfab, 0x7afc7ac75866e777, 0x00146ffc01ba4d74},
	{0xd5bd25268bc6dd4b, 0x062c310114dd950b, 0x002b607f71881539},
	{0x7ab754ec2752683a, 0x9920791c3afc81ff, 0x001faf2c4978e4bf},
	{0x2c21fc9ef5053191, 0xfc23f467538ba9b0, 0x001c25d1280bc845},
	{0x6b6d04e2455b31a5, 0x3542fa0be20b647d, 0x0002be47e73d2fe9},
	{0x1bf448069f71d73f, 0x018bfb60587fb679, 0x000e3f09d95e7df2},
	{0x9b9060e6b42ef6e3, 0xe0b4b1b67447ad9b, 0x001600291951265c},
	{0x62c54153aad9fe66, 0x88c86fe1db72a3ef, 0x0012e4e883ee1af6},
	{0x3a4109947660d589, 0x83b9a5e73f1fc4a7, 0x0037702eeb1b024a},
	{0x4c26acdf5730c36f, 0x9590c33de831fc4c, 0x000649dbdcfdd2da},
	{0xfbdaeb2c9d55b34a, 0xf1d00c6ecc86ed31, 0x003b19118056d018},
	{0x7eaa9a0573cb5502, 0x2d998f37ac46669f, 0x001436736ef018d3},
	{0x867fd246f843ab33, 0x2733c9f00b1d5e12, 0x0037e6e50e22745d},
	{0xb5d4f10ef6102680, 0xaa4ddd1e085efc7b, 0x000805a6a7e405a0},
	{0x7beb8cbf67610000, 0x60789fef588d1321, 0x0035172b56572b2e},
	{0xa50692ec8a000000, 0x8d96a4258acc40ea, 0x00144ba872346d8b},
	{0x1607a8e400000000, 0x4318315a4c68f008, 0x000c34f26e05022c},
	{0x306be80000000000, 0x96df66bd0f5765ea, 0x00012a8775cddcde},
	{0xb510000000000000, 0xa7558d2b3e74c996, 0x002fee609af3e21d},
	{0xa000000000000000, 0x64cc9bff2774867e, 0x0038c8934bd2c709},
	{0x0000000000000000, 0x18acec3a092c2a40, 0x0031135136ef3493},
	{0x0000000000000000, 0xed6c7d8b03d68000, 0x0037b1c046a8c3ef},
	{0x0000000000000000, 0x2a926f9041000000, 0x00274b3354a8258a},
	{0x0000000000000000, 0xe7c9ed4a00000000, 0x002726521a8c6164},
	{0x0000000000000000, 0x21c0640000000000, 0x0020af539cf8980e},
	{0x0000000000000000, 0xf6e8000000000000, 0x0039e15ae242cb69},
	{0x0000000000000000, 0x1000000000000000, 0x000f8d447e279c63},
	{0x0000000000000000, 0x0000000000000000, 0x000938fe29adcaa0},
	{0x0000000000000000, 0x0000000000000000, 0x002876c7e6224000},
	{0x00000000001a44e0, 0x0000000000000000, 0x0000000000000000},
	{0x00061dc1ac084f43, 0x0000000000000000, 0x0000000000000000},
	{0x5ca239028e3bc027, 0x0000000000016c8e, 0x0000000000000000},
	{0xe34d59759c3aa827, 0x000054e13ca571d1, 0x0000000000000000},
	{0xf4584d5068da2929, 0x3b72569c63752d80, 0x00000000000013c3},
	{0xb78acd7542aede5a, 0x5d573c748dcb17bd, 0x00000499f1bd29a6},
	{0x2506f10e61ee36b5, 0x107f1287422919ad, 0x002c0af9a8748710},
	{0xcd6e292e9609d977, 0x963bffd8c7f37ef2, 0x001b2195e609e2ba},
	{0x6f19496eeb669307, 0x365e748275938ddb, 0x00024d3b31c56e9a},
	{0xb0ebc555fad595be, 0xaf82ad3b568acecc, 0x002df7dddc922892},
	{0x903df5eb33603760, 0xff54df731b1647e9, 0x002207b98ab47105},
	{0x085fab2e314b28c4, 0xeacd4159ab7d58c4, 0x002a0326c0a2e406},
	{0x1c386c80e42fe1c2, 0xf007ce2d7be5c49c, 0x0025ed0b4c3402ce},
	{0x7fbe01e331aee11f, 0xab9a604b8d8d2937, 0x000c1c186c057a9c},
	{0x6c9c76497941868e, 0x270e4d1bf8596d88, 0x00014692308b6e77},
	{0x8c7b051b2ac594e8, 0x1de81400e5870b15, 0x002076c3eed7cf31},
	{0x673ab3ece39c2436, 0x5d38e7e73115dd07, 0x00323f3d3eed3bd1},
	{0x26eed3df685d7572, 0xb05ffdd2eba6783c, 0x00373c3a6da1653c},
	{0x64a09aa388c0d014, 0x0b798dcb8c07ed38, 0x002593eb3d0a1c6a},
	{0x70e9bdd9c4a31225, 0x1f9aaceef44c0ba7, 0x00025aa982db97db},
	{0xd51fb4701c038b05, 0x268109329af1ea75, 0x003320c61fec8fd7},
	{0x6646214672c5e885, 0x0368e4d316017dd3, 0x0037142fc6ccab20},
	{0x97163e34aafaa2af, 0x119c244297067e8e, 0x002fa730d1127c87},
	{0x1c2c2d2df3656632, 0x5d79e43e1e7586ef, 0x00044de0a092282e},
	{0xa0630b9adbbd5d74, 0xcc7c6cd503cdcd37, 0x002207a22f23e8af},
	{0xd2f505d7552d7a20, 0xbde4cd19a95b33cf, 0x00085c56d37c6748},
	{0x7ac6a1b6876991e3, 0xd54e257007855c33, 0x001cf7060f055cbe},
	{0x149cd0fa317f3f75, 0x00aaa8688f0441a3, 0x00013f9e0123e7f3},
	{0x1ccf853a8775aede, 0x10be84896da538c3, 0x00085c2ade5b7a00},
	{0x618dcafb35c26d46, 0xbb8579fd7bcd1d46, 0x00154c6d962a085d},
	{0xe2ac5e901fdbda3a, 0x2046c2d2adebe60d, 0x0009c957cd348760},
	{0x1ca88eb018dd7968, 0x968c3b29bb1f0a58, 0x000c3af60a1592ef},
	{0x6c40f3d492b3c4b0, 0xdbe9a5b505c59ce5, 0x000505e8a1c3eec8},
	{0xec156a3a88918420, 0xc3fada972fc31eaf, 0x002d9e8089eda144},
	{0x4a81e0bf9ff2ad51, 0x476fff22f773c4a6, 0x003753d95dc8f7ec},
	{0xd87a5a233d8f0fc4, 0xe9622137f85ff7b7, 0x002ecaa72c3a398a},
	{0xe382cf4458c19b00, 0x501fb1ce1cf37d30, 0x000d8e7792c19ed7},
	{0xa71df138d7a484f4, 0x78f62b2bb4a095fa, 0x002d14adf4536644},
	{0xd63b7dc3e221e6e9, 0x48fc27b1b3a43678, 0x00136aff1bc3877b},
	{0xbe30690b4495da56, 0xcc9f2116310beed0, 0x002d867332e34c6c},
	{0xfc78af955fe5aa47, 0x94c2c3eb2fd84766, 0x0034ec0c66e99dcf},
	{0x47817c11f8bcb5f3, 0xbe193450587af448, 0x003664a01cae2bb2},
	{0xf3094db939615bd9, 0xe000f614a0b6e3e8, 0x00288d61e9d13437},
	{0xc8fa1c02e9f07561, 0x8b9f1b5c19fb2847, 0x0030b5875d71100b},
	{0xdfc5724b9db62e34, 0x3afb2fdef4492f7e, 0x001a530f86c8c530},
	{0xfb0586af6e9048cc, 0x6231beba8f5f3aaf, 0x002ebed728336dad},
	{0xd04a30d09c474e7e, 0xfbc466f10106236f, 0x000bf95f8479585c},
	{0xfc070d4c800d0865, 0x717132aaee3aa03b, 0x001c40bc55af1688},
	{0x320665d063b7785e, 0x31b5b22c799a912c, 0x0028c40f2800fe49},
	{0x52adb3cac508eaf2, 0xcd5ede647aaa70c9, 0x00003b349f228896},
	{0xf34194fc0c4a992c, 0xcc325b50bc28a02a, 0x00080a5c2bd3665f},
	{0x760377dff194fc92, 0x45fc41d24e4856bb, 0x0031386a78780876},
	{0x75fb5e74f7338662, 0x1c7db5467567b5d5, 0x001bf2870ff49024},
	{0x1fdde005ed97298d, 0x7a7b1fef6a145714, 0x0038f11802069ae1},
	{0x341770fba7cf3e53, 0x8aab6a0212292f3f, 0x000189b05913f912},
	{0x76364872059f0d24, 0x81140cfe7c4e9c3e, 0x0004a67adda58df7},
	{0xb10d0224ad453226, 0x49fdb3626a1ae8a0, 0x00268bd213a890e8},
	{0x01b01ee7747ecaf4, 0xc733af8635074d06, 0x00273f51b7214557},
	{0xe777eef827eea7c3, 0x4d747afc7ac75866, 0x0007bf19326e01ba},
	{0x950bd5bd25268bc7, 0x1539062c310114dd, 0x00199ce9c7497188},
	{0x81ff7ab754ec2753, 0xe4bf9920791c3afc, 0x001119929c564978},
	{0xa9b02c21fc9ef506, 0xc845fc23f467538b, 0x0014171b256b280b},
	{0x647d6b6d04e2455c, 0x2fe93542fa0be20b, 0x0018f3055bd7e73d},
	{0xb6791bf448069f72, 0x7df2018bfb60587f, 0x003244d6914fd95e},
	{0xad9b9b9060e6b42f, 0x265ce0b4b1b67447, 0x001297608b631951},
	{0xa3ef62c54153aada, 0x1af688c86fe1db72, 0x001712c120a283ee},
	{0xc4a73a4109947661, 0x024a83b9a5e73f1f, 0x0025d6ab798ceb1b},
	{0xfc4c4c26acdf5731, 0xd2da9590c33de831, 0x0020cf63d949dcfd},
	{0xed31fbdaeb2c9d56, 0xd018f1d00c6ecc86, 0x00113297b8a98056},
	{0x669f7eaa9a0573cc, 0x18d32d998f37ac46, 0x00277710f5736ef0},
	{0x5e12867fd246f844, 0x745d2733c9f00b1d, 0x001ae05d27b10e22},
	{0xfc7bb5d4f10ef611, 0x05a0aa4ddd1e085e, 0x0029395026b2a7e4},
	{0x13217beb8cbf6761, 0x2b2e60789fef588d, 0x002998b784f15657},
	{0x40eaa50692ec8a00, 0x6d8b8d96a4258acc, 0x003830d275847234},
	{0xf0081607a8e40000, 0x022c4318315a4c68, 0x001ed6674ae66e05},
	{0x65ea306be8000000, 0xdcde96df66bd0f57, 0x0035a6af295375cd},
	{0xc996b51000000000, 0xe21da7558d2b3e74, 0x00136e9d2ab29af3},
	{0x867ea00000000000, 0xc70964cc9bff2774, 0x002995b45a174bd2},
	{0x2a40000000000000, 0x349318acec3a092c, 0x00056c8f927f36ef},
	{0x8000000000000000, 0xc3efed6c7d8b03d6, 0x001d9e948e5c46a8},
	{0x0000000000000000, 0x258a2a926f904100, 0x00157c14366f54a8},
	{0x0000000000000000, 0x6164e7c9ed4a0000, 0x0019ebd3869a1a8c},
	{0x0000000000000000, 0x980e21c064000000, 0x0023e14bebd79cf8},
	{0x0000000000000000, 0xcb69f6e800000000, 0x0032338bda72e242},
	{0x0000000000000000, 0x9c63100000000000, 0x001abf9c27987e27},
	{0x0000000000000000, 0xcaa0000000000000, 0x00238147586a29ad},
	{0x0000000000000000, 0x4000000000000000, 0x0018b7cbe521e622},
	{0x0000000000000000, 0x0000000000000000, 0x0007e48914f18680},
	{0x000000000000001b, 0x0000000000000000, 0x0000000000000000},
	{0x000000061dc1ac09, 0x0000000000000000, 0x0000000000000000},
	{0x6c8e5ca239028e3c, 0x0000000000000001, 0x0000000000000000},
	{0x71d1e34d59759c3b, 0x0000000054e13ca5, 0x0000000000000000},
	{0x2d80f4584d5068db, 0x13c33b72569c6375, 0x0000000000000000},
	{0x17bdb78acd7542af, 0x29a65d573c748dcb, 0x000000000499f1bd},
	{0x19ad2506f10e61ef, 0x8710107f12874229, 0x0023d7cb7d23a874},
	{0x7ef2cd6e292e960a, 0xe2ba963bffd8c7f3, 0x00084d625425e609},
	{0x8ddb6f19496eeb67, 0x6e9a365e74827593, 0x0008d2ee90b731c5},
	{0xceccb0ebc555fad6, 0x2892af82ad3b568a, 0x002aa73cfe87dc92},
	{0x47e9903df5eb3361, 0x7105ff54df731b16, 0x001fa1fb93518ab4},
	{0x58c4085fab2e314c, 0xe406eacd4159ab7d, 0x0012fc455e0ac0a2},
	{0xc49c1c386c80e430, 0x02cef007ce2d7be5, 0x000280e5e88b4c34},
	{0x29377fbe01e331af, 0x7a9cab9a604b8d8d, 0x00206ec9be106c05},
	{0x6d886c9c76497942, 0x6e77270e4d1bf859, 0x0003d2d333ca308b},
	{0x0b158c7b051b2ac6, 0xcf311de81400e587, 0x002f1370e0a3eed7},
	{0xdd07673ab3ece39d, 0x3bd15d38e7e73115, 0x00262b2ac5093eed},
	{0x783c26eed3df685e, 0x653cb05ffdd2eba6, 0x00022717d3266da1},
	{0xed3864a09aa388c1, 0x1c6a0b798dcb8c07, 0x0008f28077ed3d0a},
	{0x0ba770e9bdd9c4a4, 0x97db1f9aaceef44c, 0x00373c833ecb82db},
	{0xea75d51fb4701c04, 0x8fd7268109329af1, 0x002f6235e95a1fec},
	{0x7dd36646214672c6, 0xab200368e4d31601, 0x0014fbd9d6a5c6cc},
	{0x7e8e97163e34aafb, 0x7c87119c24429706, 0x0026990d916cd112},
	{0x86ef1c2c2d2df366, 0x282e5d79e43e1e75, 0x001955fae4caa092},
	{0xcd37a0630b9adbbe, 0xe8afcc7c6cd503cd, 0x002f2d8629e22f23},
	{0x33cfd2f505d7552e, 0x6748bde4cd19a95b, 0x0034a9a01b6cd37c},
	{0x5c337ac6a1b6876a, 0x5cbed54e25700785, 0x0019568ac3840f05},
	{0x41a3149cd0fa3180, 0xe7f300aaa8688f04, 0x001ebf4f79740123},
	{0x38c31ccf853a8776, 0x7a0010be84896da5, 0x001b02677ef4de5b},
	{0x1d46618dcafb35c3, 0x085dbb8579fd7bcd, 0x0039034e0f99962a},
	{0xe60de2ac5e901fdc, 0x87602046c2d2adeb, 0x0023c27935b3cd34},
	{0x0a581ca88eb018de, 0x92ef968c3b29bb1f, 0x0029dd026cb80a15},
	{0x9ce56c40f3d492b4, 0xeec8dbe9a5b505c5, 0x002ad99a41cca1c3},
	{0x1eafec156a3a8892, 0xa144c3fada972fc3, 0x002fa502ef8a89ed},
	{0xc4a64a81e0bf9ff3, 0xf7ec476fff22f773, 0x0020418e0df35dc8},
	{0xf7b7d87a5a233d90, 0x398ae9622137f85f, 0x0038a9c3c4092c3a},
	{0x7d30e382cf4458c2, 0x9ed7501fb1ce1cf3, 0x000222bd432f92c1},
	{0x95faa71df138d7a5, 0x664478f62b2bb4a0, 0x000b139671e1f453},
	{0x3678d63b7dc3e222, 0x877b48fc27b1b3a4, 0x00349bee7d871bc3},
	{0xeed0be30690b4496, 0x4c6ccc9f2116310b, 0x001f75175fc132e3},
	{0x4766fc78af955fe6, 0x9dcf94c2c3eb2fd8, 0x002cfb8b718066e9},
	{0xf44847817c11f8bd, 0x2bb2be193450587a, 0x001de55b111c1cae},
	{0xe3e8f3094db93962, 0x3437e000f614a0b6, 0x00068b9b9379e9d1},
	{0x2847c8fa1c02e9f1, 0x100b8b9f1b5c19fb, 0x001c629a11615d71},
	{0x2f7edfc5724b9db7, 0xc5303afb2fdef449, 0x0016ab68187186c8},
	{0x3aaffb0586af6e91, 0x6dad6231beba8f5f, 0x001a6eb4ee932833},
	{0x236fd04a30d09c48, 0x585cfbc466f10106, 0x0022433e26ef8479},
	{0xa03bfc070d4c800e, 0x1688717132aaee3a, 0x0037c45aa6e455af},
	{0x912c320665d063b8, 0xfe4931b5b22c799a, 0x003529cf11212800},
	{0x70c952adb3cac509, 0x8896cd5ede647aaa, 0x0007b84474c49f22},
	{0xa02af34194fc0c4b, 0x665fcc325b50bc28, 0x002dc78fd5d22bd3},
	{0x56bb760377dff195, 0x087645fc41d24e48, 0x0030ef2dec587878},
	{0xb5d575fb5e74f734, 0x90241c7db5467567, 0x00149941f1370ff4},
	{0x57141fdde005ed98, 0x9ae17a7b1fef6a14, 0x000cd1f868ee0206},
	{0x2f3f341770fba7d0, 0xf9128aab6a021229, 0x00376a608b445913},
	{0x9c3e7636487205a0, 0x8df781140cfe7c4e, 0x000fe9db1eb4dda5},
	{0xe8a0b10d0224ad46, 0x90e849fdb3626a1a, 0x002a1c71343413a8},
	{0x4d0601b01ee7747f, 0x4557c733af863507, 0x000c2004c44fb721},
	{0x5866e777eef827ef, 0x01ba4d747afc7ac7, 0x00128f67bb7f326e},
	{0x14dd950bd5bd2527, 0x71881539062c3101, 0x001d9d880e5dc749},
	{0x3afc81ff7ab754ed, 0x4978e4bf9920791c, 0x0015d5a1ce989c56},
	{0x538ba9b02c21fc9f, 0x280bc845fc23f467, 0x0023884e5a33256b},
	{0xe20b647d6b6d04e3, 0xe73d2fe93542fa0b, 0x000be88c90375bd7},
	{0x587fb6791bf44807, 0xd95e7df2018bfb60, 0x000ce3a3b0a4914f},
	{0x7447ad9b9b9060e7, 0x1951265ce0b4b1b6, 0x002650feabca8b63},
	{0xdb72a3ef62c54154, 0x83ee1af688c86fe1, 0x002f2897826f20a2},
	{0x3f1fc4a73a410995, 0xeb1b024a83b9a5e7, 0x0019dfb6c5eb798c},
	{0xe831fc4c4c26ace0, 0xdcfdd2da9590c33d, 0x0036d36466ddd949},
	{0xcc86ed31fbdaeb2d, 0x8056d018f1d00c6e, 0x0033a737c9d1b8a9},
	{0xac46669f7eaa9a06, 0x6ef018d32d998f37, 0x0030d45da240f573},
	{0x0b1d5e12867fd247, 0x0e22745d2733c9f0, 0x000f1fd883af27b1},
	{0x085efc7bb5d4f10f, 0xa7e405a0aa4ddd1e, 0x0028c80de41626b2},
	{0x588d13217beb8cc0, 0x56572b2e60789fef, 0x0005284feeb384f1},
	{0x8acc40eaa50692ed, 0x72346d8b8d96a425, 0x0029cc2f3efa7584},
	{0x4c68f0081607a8e4, 0x6e05022c4318315a, 0x003a5085d8b94ae6},
	{0x0f5765ea306be800, 0x75cddcde96df66bd, 0x002b244c5f132953},
	{0x3e74c996b5100000, 0x9af3e21da7558d2b, 0x0004761c36f72ab2},
	{0x2774867ea0000000, 0x4bd2c70964cc9bff, 0x00398c49e0d85a17},
	{0x092c2a4000000000, 0x36ef349318acec3a, 0x00325f944793927f},
	{0x03d6800000000000, 0x46a8c3efed6c7d8b, 0x00225bfde3c88e5c},
	{0x4100000000000000, 0x54a8258a2a926f90, 0x002eb2132820366f},
	{0x0000000000000000, 0x1a8c6164e7c9ed4a, 0x00078005d26f869a},
	{0x0000000000000000, 0x9cf8980e21c06400, 0x0019f7747d07ebd7},
	{0x0000000000000000, 0xe242cb69f6e80000, 0x0001d824d0f9da72},
	{0x0000000000000000, 0x7e279c6310000000, 0x003a2c6b09a02798},
	{0x0000000000000000, 0x29adcaa000000000, 0x002549f6560d586a},
	{0x0000000000000000, 0xe622400000000000, 0x00031b722f3be521},
	{0x0000000000000000, 0x8680000000000000, 0x000df205e93b14f1},
	{0x0000000000000000, 0x0000000000000000, 0x000dc18ce1d0fd21},
	{0x0000000000000000, 0x0000000000000000, 0x0030a8b3c8960a00},
}
