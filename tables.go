// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

// Tables of 128-bit scaled powers of five for the shortest-form kernel.
// pow5Split[i] holds 5^i shifted to 121 bits; pow5InvSplit[q] holds
// floor(2^(pow5bits(q)+121)/5^q)+1. Both are stored as {lo, hi} word pairs.
// The values are computed offline; see the Ryu paper for the construction.

const (
	pow5Bitcount    = 121
	pow5InvBitcount = 122
)

var pow5Split = [326][2]uint64{
	{0x0000000000000000, 0x0100000000000000},
	{0x0000000000000000, 0x0140000000000000},
	{0x0000000000000000, 0x0190000000000000},
	{0x0000000000000000, 0x01f4000000000000},
	{0x0000000000000000, 0x0138800000000000},
	{0x0000000000000000, 0x0186a00000000000},
	{0x0000000000000000, 0x01e8480000000000},
	{0x0000000000000000, 0x01312d0000000000},
	{0x0000000000000000, 0x017d784000000000},
	{0x0000000000000000, 0x01dcd65000000000},
	{0x0000000000000000, 0x012a05f200000000},
	{0x0000000000000000, 0x0174876e80000000},
	{0x0000000000000000, 0x01d1a94a20000000},
	{0x0000000000000000, 0x012309ce54000000},
	{0x0000000000000000, 0x016bcc41e9000000},
	{0x0000000000000000, 0x01c6bf5263400000},
	{0x0000000000000000, 0x011c37937e080000},
	{0x0000000000000000, 0x016345785d8a0000},
	{0x0000000000000000, 0x01bc16d674ec8000},
	{0x0000000000000000, 0x01158e460913d000},
	{0x0000000000000000, 0x015af1d78b58c400},
	{0x0000000000000000, 0x01b1ae4d6e2ef500},
	{0x0000000000000000, 0x010f0cf064dd5920},
	{0x0000000000000000, 0x0152d02c7e14af68},
	{0x0000000000000000, 0x01a784379d99db42},
	{0x4000000000000000, 0x0108b2a2c2802909},
	{0x9000000000000000, 0x014adf4b7320334b},
	{0x7400000000000000, 0x019d971e4fe8401e},
	{0x0880000000000000, 0x01027e72f1f12813},
	{0xcaa0000000000000, 0x01431e0fae6d7217},
	{0xbd48000000000000, 0x0193e5939a08ce9d},
	{0x2c9a000000000000, 0x01f8def8808b0245},
	{0x3be0400000000000, 0x013b8b5b5056e16b},
	{0x0ad8500000000000, 0x018a6e32246c99c6},
	{0x8d8e640000000000, 0x01ed09bead87c037},
	{0xb878fe8000000000, 0x013426172c74d822},
	{0x66973e2000000000, 0x01812f9cf7920e2b},
	{0x403d0da800000000, 0x01e17b84357691b6},
	{0xe826288900000000, 0x012ced32a16a1b11},
	{0x622fb2ab40000000, 0x0178287f49c4a1d6},
	{0xfabb9f5610000000, 0x01d6329f1c35ca4b},
	{0x7cb54395ca000000, 0x0125dfa371a19e6f},
	{0x5be2947b3c800000, 0x016f578c4e0a060b},
	{0x32db399a0ba00000, 0x01cb2d6f618c878e},
	{0xdfc9040047440000, 0x011efc659cf7d4b8},
	{0x17bb450059150000, 0x0166bb7f0435c9e7},
	{0xddaa16406f5a4000, 0x01c06a5ec5433c60},
	{0x8a8a4de845986800, 0x0118427b3b4a05bc},
	{0xad2ce16256fe8200, 0x015e531a0a1c872b},
	{0x987819baecbe2280, 0x01b5e7e08ca3a8f6},
	{0x1f4b1014d3f6d590, 0x0111b0ec57e6499a},
	{0xa71dd41a08f48af4, 0x01561d276ddfdc00},
	{0xd0e549208b31adb1, 0x01aba4714957d300},
	{0x828f4db456ff0c8e, 0x010b46c6cdd6e3e0},
	{0xa33321216cbecfb2, 0x014e1878814c9cd8},
	{0xcbffe969c7ee839e, 0x01a19e96a19fc40e},
	{0x3f7ff1e21cf51243, 0x0105031e2503da89},
	{0x8f5fee5aa43256d4, 0x014643e5ae44d12b},
	{0x7337e9f14d3eec89, 0x0197d4df19d60576},
	{0x1005e46da08ea7ab, 0x01fdca16e04b86d4},
	{0x8a03aec4845928cb, 0x013e9e4e4c2f3444},
	{0xac849a75a56f72fd, 0x018e45e1df3b0155},
	{0x17a5c1130ecb4fbd, 0x01f1d75a5709c1ab},
	{0xeec798abe93f11d6, 0x013726987666190a},
	{0xaa797ed6e38ed64b, 0x0184f03e93ff9f4d},
	{0x1517de8c9c728bde, 0x01e62c4e38ff8721},
	{0xad2eeb17e1c7976b, 0x012fdbb0e39fb474},
	{0xd87aa5ddda397d46, 0x017bd29d1c87a191},
	{0x4e994f5550c7dc97, 0x01dac74463a989f6},
	{0xf11fd195527ce9de, 0x0128bc8abe49f639},
	{0x6d67c5faa71c2456, 0x0172ebad6ddc73c8},
	{0x88c1b77950e32d6c, 0x01cfa698c95390ba},
	{0x957912abd28dfc63, 0x0121c81f7dd43a74},
	{0xbad75756c7317b7c, 0x016a3a275d494911},
	{0x298d2d2c78fdda5b, 0x01c4c8b1349b9b56},
	{0xd9f83c3bcb9ea879, 0x011afd6ec0e14115},
	{0x50764b4abe865297, 0x0161bcca7119915b},
	{0x2493de1d6e27e73d, 0x01ba2bfd0d5ff5b2},
	{0x56dc6ad264d8f086, 0x01145b7e285bf98f},
	{0x2c938586fe0f2ca8, 0x0159725db272f7f3},
	{0xf7b866e8bd92f7d2, 0x01afcef51f0fb5ef},
	{0xfad34051767bdae3, 0x010de1593369d1b5},
	{0x79881065d41ad19c, 0x015159af80444623},
	{0x57ea147f49218603, 0x01a5b01b605557ac},
	{0xb6f24ccf8db4f3c1, 0x01078e111c3556cb},
	{0xa4aee003712230b2, 0x014971956342ac7e},
	{0x4dda98044d6abcdf, 0x019bcdfabc13579e},
	{0xf0a89f02b062b60b, 0x010160bcb58c16c2},
	{0xacd2c6c35c7b638e, 0x0141b8ebe2ef1c73},
	{0x98077874339a3c71, 0x01922726dbaae390},
	{0xbe0956914080cb8e, 0x01f6b0f092959c74},
	{0xf6c5d61ac8507f38, 0x013a2e965b9d81c8},
	{0x34774ba17a649f07, 0x0188ba3bf284e23b},
	{0x01951e89d8fdc6c8, 0x01eae8caef261aca},
	{0x40fd3316279e9c3d, 0x0132d17ed577d0be},
	{0xd13c7fdbb186434c, 0x017f85de8ad5c4ed},
	{0x458b9fd29de7d420, 0x01df67562d8b3629},
	{0xcb7743e3a2b0e494, 0x012ba095dc7701d9},
	{0x3e5514dc8b5d1db9, 0x017688bb5394c250},
	{0x4dea5a13ae346527, 0x01d42aea2879f2e4},
	{0xb0b2784c4ce0bf38, 0x01249ad2594c37ce},
	{0x5cdf165f6018ef06, 0x016dc186ef9f45c2},
	{0xf416dbf7381f2ac8, 0x01c931e8ab871732},
	{0xd88e497a83137abd, 0x011dbf316b346e7f},
	{0xceb1dbd923d8596c, 0x01652efdc6018a1f},
	{0xc25e52cf6cce6fc7, 0x01be7abd3781eca7},
	{0xd97af3c1a40105dc, 0x01170cb642b133e8},
	{0x0fd9b0b20d014754, 0x015ccfe3d35d80e3},
	{0xd3d01cde90419929, 0x01b403dcc834e11b},
	{0x6462120b1a28ffb9, 0x01108269fd210cb1},
	{0xbd7a968de0b33fa8, 0x0154a3047c694fdd},
	{0x2cd93c3158e00f92, 0x01a9cbc59b83a3d5},
	{0x3c07c59ed78c09bb, 0x010a1f5b81324665},
	{0x8b09b7068d6f0c2a, 0x014ca732617ed7fe},
	{0x2dcc24c830cacf34, 0x019fd0fef9de8dfe},
	{0xdc9f96fd1e7ec180, 0x0103e29f5c2b18be},
	{0x93c77cbc661e71e1, 0x0144db473335deee},
	{0x38b95beb7fa60e59, 0x01961219000356aa},
	{0xc6e7b2e65f8f91ef, 0x01fb969f40042c54},
	{0xfc50cfcffbb9bb35, 0x013d3e2388029bb4},
	{0x3b6503c3faa82a03, 0x018c8dac6a0342a2},
	{0xca3e44b4f9523484, 0x01efb1178484134a},
	{0xbe66eaf11bd360d2, 0x0135ceaeb2d28c0e},
	{0x6e00a5ad62c83907, 0x0183425a5f872f12},
	{0x0980cf18bb7a4749, 0x01e412f0f768fad7},
	{0x65f0816f752c6c8d, 0x012e8bd69aa19cc6},
	{0xff6ca1cb527787b1, 0x017a2ecc414a03f7},
	{0xff47ca3e2715699d, 0x01d8ba7f519c84f5},
	{0xbf8cde66d86d6202, 0x0127748f9301d319},
	{0x2f7016008e88ba83, 0x017151b377c247e0},
	{0x3b4c1b80b22ae923, 0x01cda62055b2d9d8},
	{0x250f91306f5ad1b6, 0x012087d4358fc827},
	{0xee53757c8b318623, 0x0168a9c942f3ba30},
	{0x29e852dbadfde7ac, 0x01c2d43b93b0a8bd},
	{0x3a3133c94cbeb0cc, 0x0119c4a53c4e6976},
	{0xc8bd80bb9fee5cff, 0x016035ce8b6203d3},
	{0xbaece0ea87e9f43e, 0x01b843422e3a84c8},
	{0x74d40c9294f238a7, 0x01132a095ce492fd},
	{0xd2090fb73a2ec6d1, 0x0157f48bb41db7bc},
	{0x068b53a508ba7885, 0x01adf1aea12525ac},
	{0x8417144725748b53, 0x010cb70d24b7378b},
	{0x651cd958eed1ae28, 0x014fe4d06de5056e},
	{0xfe640faf2a8619b2, 0x01a3de04895e46c9},
	{0x3efe89cd7a93d00f, 0x01066ac2d5daec3e},
	{0xcebe2c40d938c413, 0x014805738b51a74d},
	{0x426db7510f86f518, 0x019a06d06e261121},
	{0xc9849292a9b4592f, 0x0100444244d7cab4},
	{0xfbe5b73754216f7a, 0x01405552d60dbd61},
	{0x7adf25052929cb59, 0x01906aa78b912cba},
	{0x1996ee4673743e2f, 0x01f485516e7577e9},
	{0xaffe54ec0828a6dd, 0x0138d352e5096af1},
	{0x1bfdea270a32d095, 0x018708279e4bc5ae},
	{0xa2fd64b0ccbf84ba, 0x01e8ca3185deb719},
	{0x05de5eee7ff7b2f4, 0x01317e5ef3ab3270},
	{0x0755f6aa1ff59fb1, 0x017dddf6b095ff0c},
	{0x092b7454a7f3079e, 0x01dd55745cbb7ecf},
	{0x65bb28b4e8f7e4c3, 0x012a5568b9f52f41},
	{0xbf29f2e22335ddf3, 0x0174eac2e8727b11},
	{0x2ef46f9aac035570, 0x01d22573a28f19d6},
	{0xdd58c5c0ab821566, 0x0123576845997025},
	{0x54aef730d6629ac0, 0x016c2d4256ffcc2f},
	{0x29dab4fd0bfb4170, 0x01c73892ecbfbf3b},
	{0xfa28b11e277d08e6, 0x011c835bd3f7d784},
	{0x38b2dd65b15c4b1f, 0x0163a432c8f5cd66},
	{0xc6df94bf1db35de7, 0x01bc8d3f7b3340bf},
	{0xdc4bbcf772901ab0, 0x0115d847ad000877},
	{0xd35eac354f34215c, 0x015b4e5998400a95},
	{0x48365742a30129b4, 0x01b221effe500d3b},
	{0x0d21f689a5e0ba10, 0x010f5535fef20845},
	{0x506a742c0f58e894, 0x01532a837eae8a56},
	{0xe4851137132f22b9, 0x01a7f5245e5a2ceb},
	{0x6ed32ac26bfd75b4, 0x0108f936baf85c13},
	{0x4a87f57306fcd321, 0x014b378469b67318},
	{0x5d29f2cfc8bc07e9, 0x019e056584240fde},
	{0xfa3a37c1dd7584f1, 0x0102c35f729689ea},
	{0xb8c8c5b254d2e62e, 0x014374374f3c2c65},
	{0x26faf71eea079fb9, 0x01945145230b377f},
	{0xf0b9b4e6a48987a8, 0x01f965966bce055e},
	{0x5674111026d5f4c9, 0x013bdf7e0360c35b},
	{0x2c111554308b71fb, 0x018ad75d8438f432},
	{0xb7155aa93cae4e7a, 0x01ed8d34e547313e},
	{0x326d58a9c5ecf10c, 0x013478410f4c7ec7},
	{0xff08aed437682d4f, 0x01819651531f9e78},
	{0x3ecada89454238a3, 0x01e1fbe5a7e78617},
	{0x873ec895cb496366, 0x012d3d6f88f0b3ce},
	{0x290e7abb3e1bbc3f, 0x01788ccb6b2ce0c2},
	{0xb352196a0da2ab4f, 0x01d6affe45f818f2},
	{0xb0134fe24885ab11, 0x01262dfeebbb0f97},
	{0x9c1823dadaa715d6, 0x016fb97ea6a9d37d},
	{0x031e2cd19150db4b, 0x01cba7de5054485d},
	{0x21f2dc02fad2890f, 0x011f48eaf234ad3a},
	{0xaa6f9303b9872b53, 0x01671b25aec1d888},
	{0xd50b77c4a7e8f628, 0x01c0e1ef1a724eaa},
	{0xc5272adae8f199d9, 0x01188d357087712a},
	{0x7670f591a32e004f, 0x015eb082cca94d75},
	{0xd40d32f60bf98063, 0x01b65ca37fd3a0d2},
	{0xc4883fd9c77bf03e, 0x0111f9e62fe44483},
	{0xb5aa4fd0395aec4d, 0x0156785fbbdd55a4},
	{0xe314e3c447b1a760, 0x01ac1677aad4ab0d},
	{0xaded0e5aaccf089c, 0x010b8e0acac4eae8},
	{0xd96851f15802cac3, 0x014e718d7d7625a2},
	{0x8fc2666dae037d74, 0x01a20df0dcd3af0b},
	{0x39d980048cc22e68, 0x010548b68a044d67},
	{0x084fe005aff2ba03, 0x01469ae42c8560c1},
	{0x4a63d8071bef6883, 0x0198419d37a6b8f1},
	{0x9cfcce08e2eb42a4, 0x01fe52048590672d},
	{0x821e00c58dd309a7, 0x013ef342d37a407c},
	{0xa2a580f6f147cc10, 0x018eb0138858d09b},
	{0x8b4ee134ad99bf15, 0x01f25c186a6f04c2},
	{0x97114cc0ec80176d, 0x0137798f428562f9},
	{0xfcd59ff127a01d48, 0x018557f31326bbb7},
	{0xfc0b07ed7188249a, 0x01e6adefd7f06aa5},
	{0xbd86e4f466f516e0, 0x01302cb5e6f642a7},
	{0xace89e3180b25c98, 0x017c37e360b3d351},
	{0x1822c5bde0def3be, 0x01db45dc38e0c826},
	{0xcf15bb96ac8b5857, 0x01290ba9a38c7d17},
	{0xc2db2a7c57ae2e6d, 0x01734e940c6f9c5d},
	{0x3391f51b6d99ba08, 0x01d022390f8b8375},
	{0x403b393124801445, 0x01221563a9b73229},
	{0x904a077d6da01956, 0x016a9abc9424feb3},
	{0x745c895cc9081fac, 0x01c5416bb92e3e60},
	{0x48b9d5d9fda513cb, 0x011b48e353bce6fc},
	{0x5ae84b507d0e58be, 0x01621b1c28ac20bb},
	{0x31a25e249c51eeee, 0x01baa1e332d728ea},
	{0x5f057ad6e1b33554, 0x0114a52dffc67992},
	{0xf6c6d98c9a2002aa, 0x0159ce797fb817f6},
	{0xb4788fefc0a80354, 0x01b04217dfa61df4},
	{0xf0cb59f5d8690214, 0x010e294eebc7d2b8},
	{0x2cfe30734e83429a, 0x0151b3a2a6b9c767},
	{0xf83dbc9022241340, 0x01a6208b50683940},
	{0x9b2695da15568c08, 0x0107d457124123c8},
	{0xc1f03b509aac2f0a, 0x0149c96cd6d16cba},
	{0x726c4a24c1573acd, 0x019c3bc80c85c7e9},
	{0xe783ae56f8d684c0, 0x0101a55d07d39cf1},
	{0x616499ecb70c25f0, 0x01420eb449c8842e},
	{0xf9bdc067e4cf2f6c, 0x019292615c3aa539},
	{0x782d3081de02fb47, 0x01f736f9b3494e88},
	{0x4b1c3e512ac1dd0c, 0x013a825c100dd115},
	{0x9de34de57572544f, 0x018922f31411455a},
	{0x455c215ed2cee963, 0x01eb6bafd91596b1},
	{0xcb5994db43c151de, 0x0133234de7ad7e2e},
	{0x7e2ffa1214b1a655, 0x017fec216198ddba},
	{0x1dbbf89699de0feb, 0x01dfe729b9ff1529},
	{0xb2957b5e202ac9f3, 0x012bf07a143f6d39},
	{0x1f3ada35a8357c6f, 0x0176ec98994f4888},
	{0x270990c31242db8b, 0x01d4a7bebfa31aaa},
	{0x5865fa79eb69c937, 0x0124e8d737c5f0aa},
	{0xee7f791866443b85, 0x016e230d05b76cd4},
	{0x2a1f575e7fd54a66, 0x01c9abd04725480a},
	{0x5a53969b0fe54e80, 0x011e0b622c774d06},
	{0xf0e87c41d3dea220, 0x01658e3ab7952047},
	{0xed229b5248d64aa8, 0x01bef1c9657a6859},
	{0x3435a1136d85eea9, 0x0117571ddf6c8138},
	{0x4143095848e76a53, 0x015d2ce55747a186},
	{0xd193cbae5b2144e8, 0x01b4781ead1989e7},
	{0xe2fc5f4cf8f4cb11, 0x0110cb132c2ff630},
	{0x1bbb77203731fdd5, 0x0154fdd7f73bf3bd},
	{0x62aa54e844fe7d4a, 0x01aa3d4df50af0ac},
	{0xbdaa75112b1f0e4e, 0x010a6650b926d66b},
	{0xad15125575e6d1e2, 0x014cffe4e7708c06},
	{0x585a56ead360865b, 0x01a03fde214caf08},
	{0x37387652c41c53f8, 0x010427ead4cfed65},
	{0x850693e7752368f7, 0x014531e58a03e8be},
	{0x264838e1526c4334, 0x01967e5eec84e2ee},
	{0xafda4719a7075402, 0x01fc1df6a7a61ba9},
	{0x0de86c7008649481, 0x013d92ba28c7d14a},
	{0x9162878c0a7db9a1, 0x018cf768b2f9c59c},
	{0xb5bb296f0d1d280a, 0x01f03542dfb83703},
	{0x5194f9e568323906, 0x01362149cbd32262},
	{0xe5fa385ec23ec747, 0x0183a99c3ec7eafa},
	{0x9f78c67672ce7919, 0x01e494034e79e5b9},
	{0x03ab7c0a07c10bb0, 0x012edc82110c2f94},
	{0x04965b0c89b14e9c, 0x017a93a2954f3b79},
	{0x45bbf1cfac1da243, 0x01d9388b3aa30a57},
	{0x8b957721cb92856a, 0x0127c35704a5e676},
	{0x2e7ad4ea3e7726c4, 0x0171b42cc5cf6014},
	{0x3a198a24ce14f075, 0x01ce2137f7433819},
	{0xc44ff65700cd1649, 0x0120d4c2fa8a030f},
	{0xb563f3ecc1005bdb, 0x016909f3b92c83d3},
	{0xa2bcf0e7f14072d2, 0x01c34c70a777a4c8},
	{0x65b61690f6c847c3, 0x011a0fc668aac6fd},
	{0xbf239c35347a59b4, 0x016093b802d578bc},
	{0xeeec83428198f021, 0x01b8b8a6038ad6eb},
	{0x7553d20990ff9615, 0x01137367c236c653},
	{0x52a8c68bf53f7b9a, 0x01585041b2c477e8},
	{0x6752f82ef28f5a81, 0x01ae64521f7595e2},
	{0x8093db1d57999890, 0x010cfeb353a97dad},
	{0xe0b8d1e4ad7ffeb4, 0x01503e602893dd18},
	{0x18e7065dd8dffe62, 0x01a44df832b8d45f},
	{0x6f9063faa78bfefd, 0x0106b0bb1fb384bb},
	{0x4b747cf9516efebc, 0x01485ce9e7a065ea},
	{0xde519c37a5cabe6b, 0x019a742461887f64},
	{0x0af301a2c79eb703, 0x01008896bcf54f9f},
	{0xcdafc20b798664c4, 0x0140aabc6c32a386},
	{0x811bb28e57e7fdf5, 0x0190d56b873f4c68},
	{0xa1629f31ede1fd72, 0x01f50ac6690f1f82},
	{0xa4dda37f34ad3e67, 0x013926bc01a973b1},
	{0x0e150c5f01d88e01, 0x0187706b0213d09e},
	{0x919a4f76c24eb181, 0x01e94c85c298c4c5},
	{0x7b0071aa39712ef1, 0x0131cfd3999f7afb},
	{0x59c08e14c7cd7aad, 0x017e43c8800759ba},
	{0xf030b199f9c0d958, 0x01ddd4baa0093028},
	{0x961e6f003c1887d7, 0x012aa4f4a405be19},
	{0xfba60ac04b1ea9cd, 0x01754e31cd072d9f},
	{0xfa8f8d705de65440, 0x01d2a1be4048f907},
	{0xfc99b8663aaff4a8, 0x0123a516e82d9ba4},
	{0x3bc0267fc95bf1d2, 0x016c8e5ca239028e},
	{0xcab0301fbbb2ee47, 0x01c7b1f3cac74331},
	{0x1eae1e13d54fd4ec, 0x011ccf385ebc89ff},
	{0xe659a598caa3ca27, 0x01640306766bac7e},
	{0x9ff00efefd4cbcb1, 0x01bd03c81406979e},
	{0x23f6095f5e4ff5ef, 0x0116225d0c841ec3},
	{0xecf38bb735e3f36a, 0x015baaf44fa52673},
	{0xe8306ea5035cf045, 0x01b295b1638e7010},
	{0x911e4527221a162b, 0x010f9d8ede39060a},
	{0x3565d670eaa09bb6, 0x015384f295c7478d},
	{0x82bf4c0d2548c2a3, 0x01a8662f3b391970},
	{0x51b78f88374d79a6, 0x01093fdd8503afe6},
	{0xe625736a4520d810, 0x014b8fd4e6449bdf},
	{0xdfaed044d6690e14, 0x019e73ca1fd5c2d7},
	{0xebcd422b0601a8cc, 0x0103085e53e599c6},
	{0xa6c092b5c78212ff, 0x0143ca75e8df0038},
	{0xd070b763396297bf, 0x0194bd136316c046},
	{0x848ce53c07bb3daf, 0x01f9ec583bdc7058},
	{0x52d80f4584d5068d, 0x013c33b72569c637},
	{0x278e1316e60a4831, 0x018b40a4eec437c5},
}

var pow5InvSplit = [292][2]uint64{
	{0x0000000000000001, 0x0400000000000000},
	{0x3333333333333334, 0x0333333333333333},
	{0x28f5c28f5c28f5c3, 0x028f5c28f5c28f5c},
	{0xed916872b020c49c, 0x020c49ba5e353f7c},
	{0xaf4f0d844d013a93, 0x0346dc5d63886594},
	{0x8c3f3e0370cdc876, 0x029f16b11c6d1e10},
	{0xd698fe69270b06c5, 0x0218def416bdb1a6},
	{0xf0f4ca41d811a46e, 0x035afe535795e90a},
	{0xf3f70834acdae9f1, 0x02af31dc4611873b},
	{0x5cc5a02a23e254c1, 0x0225c17d04dad296},
	{0xfad5cd10396a2135, 0x036f9bfb3af7b756},
	{0xfbde3da69454e75e, 0x02bfaffc2f2c92ab},
	{0x2fe4fe1edd10b918, 0x0232f33025bd4223},
	{0x4ca19697c81ac1bf, 0x0384b84d092ed038},
	{0x3d4e1213067bce33, 0x02d09370d4257360},
	{0x643e74dc052fd829, 0x024075f3dceac2b3},
	{0x6d30baf9a1e626a7, 0x039a5652fb113785},
	{0x2426fbfae7eb5220, 0x02e1dea8c8da92d1},
	{0x1cebfcc8b9890e80, 0x024e4bba3a487574},
	{0x94acc7a78f41b0cc, 0x03b07929f6da5586},
	{0xaa23d2ec729af3d7, 0x02f394219248446b},
	{0xbb4fdbf05baf2979, 0x025c768141d369ef},
	{0xc54c931a2c4b758d, 0x03c7240202ebdcb2},
	{0x9dd6dc14f03c5e0b, 0x0305b66802564a28},
	{0x4b1249aa59c9e4d6, 0x026af8533511d4ed},
	{0x44ea0f76f60fd489, 0x03de5a1ebb4fbb15},
	{0x6a54d92bf80caa07, 0x0318481895d96277},
	{0x21dd7a89933d54d2, 0x0279d346de4781f9},
	{0x362f2a75b8622150, 0x03f61ed7ca0c0328},
	{0xf825bb91604e810d, 0x032b4bdfd4d668ec},
	{0xc684960de6a5340b, 0x0289097fdd7853f0},
	{0xd203ab3e521dc33c, 0x02073accb12d0ff3},
	{0xe99f7863b696052c, 0x033ec47ab514e652},
	{0x87b2c6b62bab3757, 0x02989d2ef743eb75},
	{0xd2f56bc4efbc2c45, 0x0213b0f25f69892a},
	{0x1e55793b192d13a2, 0x0352b4b6ff0f41de},
	{0x4b77942f475742e8, 0x02a8909265a5ce4b},
	{0xd5f9435905df68ba, 0x022073a8515171d5},
	{0x565b9ef4d6324129, 0x03671f73b54f1c89},
	{0xdeafb25d78283421, 0x02b8e5f62aa5b06d},
	{0x188c8eb12cecf681, 0x022d84c4eeeaf38b},
	{0x8dadb11b7b14bd9b, 0x037c07a17e44b8de},
	{0x7157c0e2c8dd647c, 0x02c99fb46503c718},
	{0x8ddfcd823a4ab6ca, 0x023ae629ea696c13},
	{0x1632e269f6ddf142, 0x0391704310a8acec},
	{0x44f581ee5f17f435, 0x02dac035a6ed5723},
	{0x372ace584c1329c4, 0x024899c4858aac1c},
	{0xbeaae3c079b842d3, 0x03a75c6da27779c6},
	{0x6555830061603576, 0x02ec49f14ec5fb05},
	{0xb7779c004de6912b, 0x0256a18dd89e626a},
	{0xf258f99a163db512, 0x03bdcf495a9703dd},
	{0x5b7a614811caf741, 0x02fe3f6de212697e},
	{0xaf951aa00e3bf901, 0x0264ff8b1b41edfe},
	{0x7f54f7667d2cc19b, 0x03d4cc11c5364997},
	{0x32aa5f8530f09ae3, 0x0310a3416a91d479},
	{0xf55519375a5a1582, 0x0273b5cdeedb1060},
	{0xbbbb5b8bc3c3559d, 0x03ec56164af81a34},
	{0x2fc916096969114a, 0x03237811d593482a},
	{0x596dab3ababa743c, 0x0282c674aadc39bb},
	{0x478aef622efb9030, 0x0202385d557cfafc},
	{0xd8de4bd04b2c19e6, 0x0336c0955594c4c6},
	{0xad7ea30d08f014b8, 0x029233aaaadd6a38},
	{0x24654f3da0c01093, 0x020e8fbbbbe454fa},
	{0x3a3bb1fc346680eb, 0x034a7f92c63a2190},
	{0x94fc8e635d1ecd89, 0x02a1ffa89e94e7a6},
	{0xaa63a51c4a7f0ad4, 0x021b32ed4baa52eb},
	{0xdd6c3b607731aaed, 0x035eb7e212aa1e45},
	{0x1789c919f8f488bd, 0x02b22cb4dbbb4b6b},
	{0xac6e3a7b2d906d64, 0x022823c3e2fc3c55},
	{0x13e390c515b3e23a, 0x03736c6c9e606089},
	{0xdcb60d6a77c31b62, 0x02c2bd23b1e6b3a0},
	{0x7d5e7121f968e2b5, 0x0235641c8e52294d},
	{0xc8971b698f0e3787, 0x0388a02db0837548},
	{0xa078e2bad8d82c6c, 0x02d3b357c0692aa0},
	{0xe6c71bc8ad79bd24, 0x0242f5dfcd20eee6},
	{0x0ad82c7448c2c839, 0x039e5632e1ce4b0b},
	{0x3be023903a356cfa, 0x02e511c24e3ea26f},
	{0x2fe682d9c82abd95, 0x0250db01d8321b8c},
	{0x4ca4048fa6aac8ee, 0x03b4919c8d1cf8e0},
	{0x3d5003a61eef0725, 0x02f6dae3a4172d80},
	{0x9773361e7f259f51, 0x025f1582e9ac2466},
	{0x8beb89ca6508fee8, 0x03cb559e42ad070a},
	{0x6fefa16eb73a6586, 0x0309114b688a6c08},
	{0xf3261abef8fb846b, 0x026da76f86d52339},
	{0x51d691318e5f3a45, 0x03e2a57f3e21d1f6},
	{0x0e4540f471e5c837, 0x031bb798fe8174c5},
	{0xd8376729f4b7d360, 0x027c92e0cb9ac3d0},
	{0xf38bd84321261eff, 0x03fa849adf5e061a},
	{0x293cad0280eb4bff, 0x032ed07be5e4d1af},
	{0xedca240200bc3ccc, 0x028bd9fcb7ea4158},
	{0xbe3b50019a3030a4, 0x02097b309321cde0},
	{0xc9f88002904d1a9f, 0x03425eb41e9c7c9a},
	{0x3b2d3335403daee6, 0x029b7ef67ee396e2},
	{0x95bdc291003158b8, 0x0215ff2b98b6124e},
	{0x892f9db4cd1bc126, 0x035665128df01d4a},
	{0x07594af70a7c9a85, 0x02ab840ed7f34aa2},
	{0x6c476f2c0863aed1, 0x0222d00bdff5d54e},
	{0x13a57eacda3917b4, 0x036ae67966562217},
	{0x0fb7988a482dac90, 0x02bbeb9451de81ac},
	{0xd95fad3b6cf156da, 0x022fefa9db1867bc},
	{0xf565e1f8ae4ef15c, 0x037fe5dc91c0a5fa},
	{0x911e4e608b725ab0, 0x02ccb7e3a7cd5195},
	{0xda7ea51a0928488d, 0x023d5fe9530aa7aa},
	{0xf7310829a8407415, 0x039566421e7772aa},
	{0x2c2739baed005cde, 0x02ddeb68185f8eef},
	{0xbcec2e2f24004a4b, 0x024b22b9ad193f25},
	{0x94ad16b1d333aa11, 0x03ab6ac2ae8ecb6f},
	{0xaa241227dc2954db, 0x02ef889bbed8a2bf},
	{0x54e9a81fe35443e2, 0x02593a163246e899},
	{0x2175d9cc9eed396a, 0x03c1f689ea0b0dc2},
	{0xe7917b0a18bdc788, 0x03019207ee6f3e34},
	{0xb9412f3b46fe393a, 0x0267a8065858fe90},
	{0xf535185ed7fd285c, 0x03d90cd6f3c1974d},
	{0xc42a79e57997537d, 0x03140a458fce12a4},
	{0x03552e512e12a931, 0x02766e9e0ca4dbb7},
	{0x9eeeb081e3510eb4, 0x03f0b0fce107c5f1},
	{0x4bf226ce4f740bc3, 0x0326f3fd80d304c1},
	{0xa3281f0b72c33c9c, 0x02858ffe00a8d09a},
	{0x1c2018d5f568fd4a, 0x020473319a20a6e2},
	{0xf9ccf48988a7fba9, 0x033a51e8f69aa49c},
	{0xfb0a5d3ad3b99621, 0x02950e53f87bb6e3},
	{0x2f3b7dc8a96144e7, 0x0210d8432d2fc583},
	{0xe52bfc7442353b0c, 0x034e26d1e1e608d1},
	{0xb756639034f76270, 0x02a4ebdb1b1e6d74},
	{0x2c451c735d92b526, 0x021d897c15b1f12a},
	{0x13a1c71efc1deea3, 0x0362759355e981dd},
	{0x761b05b2634b2550, 0x02b52adc44bace4a},
	{0x91af37c1e908eaa6, 0x022a88b036fbd83b},
	{0x82b1f2cfdb417770, 0x03774119f192f392},
	{0xcef4c23fe29ac5f3, 0x02c5cdae5adbf60e},
	{0x3f2a34ffe87bd190, 0x0237d7beaf165e72},
	{0x984387ffda5fb5b2, 0x038c8c644b56fd83},
	{0xe0360666484c915b, 0x02d6d6b6a2abfe02},
	{0x802b3851d3707449, 0x024578921bbccb35},
	{0x99dec082ebe72075, 0x03a25a835f947855},
	{0xae4bcd358985b391, 0x02e8486919439377},
	{0xbea30a913ad15c74, 0x02536d20e102dc5f},
	{0xfdd1aa81f7b560b9, 0x03b8ae9b019e2d65},
	{0x97daeece5fc44d61, 0x02fa2548ce182451},
	{0xdfe258a51969d781, 0x0261b76d71ace9da},
	{0x996a276e8f0fbf34, 0x03cf8be24f7b0fc4},
	{0xe121b9253f3fcc2a, 0x030c6fe83f95a636},
	{0xb41afa8432997022, 0x02705986994484f8},
	{0xecf7f739ea8f19cf, 0x03e6f5a4286da18d},
	{0x23f99294bba5ae40, 0x031f2ae9b9f14e0b},
	{0x4ffadbaa2fb7be99, 0x027f5587c7f43e6f},
	{0x7ff7c5dd1925fdc2, 0x03feef3fa6539718},
	{0xccc637e4141e649b, 0x033258ffb842df46},
	{0xd704f983434b83af, 0x028ead9960357f6b},
	{0x126a6135cf6f9c8c, 0x020bbe144cf79923},
	{0x83dd685618b29414, 0x0345fced47f28e9e},
	{0x9cb12044e08edcdd, 0x029e63f1065ba54b},
	{0x16f419d0b3a57d7d, 0x02184ff405161dd6},
	{0x8b20294dec3bfbfb, 0x035a19866e89c956},
	{0x3c19baa4bcfcc996, 0x02ae7ad1f207d445},
	{0xc9ae2eea30ca3adf, 0x02252f0e5b39769d},
	{0x0f7d17dd1add2afd, 0x036eb1b091f58a96},
	{0x3f97464a7be42264, 0x02bef48d41913bab},
	{0xcc790508631ce850, 0x02325d3dce0dc955},
	{0xe0c1a1a704fb0d4d, 0x0383c862e3494222},
	{0x4d67b4859d95a43e, 0x02cfd3824f6dce82},
	{0x711fc39e17aae9cb, 0x023fdc683f8b0b9b},
	{0xe832d2968c44a945, 0x039960a6cc11ac2b},
	{0xecf575453d03ba9e, 0x02e11a1f09a7bcef},
	{0x572ac4376402fbb1, 0x024dae7f3aec9726},
	{0x58446d256cd192b5, 0x03af7d985e47583d},
	{0x79d0575123dadbc4, 0x02f2cae04b6c4697},
	{0x94a6ac40e97be303, 0x025bd5803c569edf},
	{0x8771139b0f2c9e6c, 0x03c62266c6f0fe32},
	{0x9f8da948d8f07ebd, 0x0304e85238c0cb5b},
	{0xe60aedd3e0c06564, 0x026a5374fa33d5e2},
	{0xa344afb9679a3bd2, 0x03dd5254c3862304},
	{0xe903bfc78614fca8, 0x031775109c6b4f36},
	{0xba6966393810ca20, 0x02792a73b055d8f8},
	{0x2a423d2859b4769a, 0x03f510b91a22f4c1},
	{0xee9b642047c39215, 0x032a73c7481bf700},
	{0xbee2b680396941aa, 0x02885c9f6ce32c00},
	{0xff1bc53361210155, 0x0206b07f8a4f5666},
	{0x31c6085235019bbb, 0x033de73276e5570b},
	{0x27d1a041c4014963, 0x0297ec285f1ddf3c},
	{0xeca7b367d0010782, 0x021323537f4b18fc},
	{0xadd91f0c8001a59d, 0x0351d21f3211c194},
	{0xf17a7f3d3334847e, 0x02a7db4c280e3476},
	{0x279532975c2a0398, 0x021fe2a3533e905f},
	{0xd8eeb75893766c26, 0x0366376bb8641a31},
	{0x7a5892ad42c52352, 0x02b82c562d1ce1c1},
	{0xfb7a0ef102374f75, 0x022cf044f0e3e7cd},
	{0xc59017e8038bb254, 0x037b1a07e7d30c7c},
	{0x37a67986693c8eaa, 0x02c8e19feca8d6ca},
	{0xf951fad1edca0bbb, 0x023a4e198a20abd4},
	{0x28832ae97c76792b, 0x03907cf5a9cddfbb},
	{0x2068ef21305ec756, 0x02d9fd9154a4b2fc},
	{0x19ed8c1a8d189f78, 0x0247fe0ddd508f30},
	{0x5caf4690e1c0ff26, 0x03a66349621a7eb3},
	{0x4a25d20d81673285, 0x02eb82a11b48655c},
	{0x3b5174d79ab8f537, 0x0256021a7c39eab0},
	{0x921bee25c45b21f1, 0x03bcd02a605caab3},
	{0xdb498b5169e2818e, 0x02fd735519e3bbc2},
	{0x15d46f7454b53472, 0x02645c4414b62fcf},
	{0xefba4bed545520b6, 0x03d3c6d35456b2e4},
	{0xf2fb6ff110441a2b, 0x030fd242a9def583},
	{0x8f2f8cc0d9d014ef, 0x02730e9bbb18c469},
	{0xb1e5ae015c80217f, 0x03eb4a92c4f46d75},
	{0xc1848b344a001acc, 0x0322a20f03f6bdf7},
	{0xce03a2903b3348a3, 0x02821b3f365efe5f},
	{0xd802e873628f6d4f, 0x0201af65c518cb7f},
	{0x599e40b89db2487f, 0x0335e56fa1c14599},
	{0xe14b66fa17c1d399, 0x029184594e3437ad},
	{0x81091f2e7967dc7a, 0x020e037aa4f692f1},
	{0x9b41cb7d8f0c93f6, 0x03499f2aa18a84b5},
	{0xaf67d5fe0c0a0ff8, 0x02a14c221ad536f7},
	{0xf2b977fe70080cc7, 0x021aa34e7bddc592},
	{0x1df58cca4cd9ae0b, 0x035dd2172c9608eb},
	{0xe4c470a1d7148b3c, 0x02b174df56de6d88},
	{0x83d05a1b1276d5ca, 0x022790b2abe5246d},
	{0x9fb3c35e83f1560f, 0x0372811ddfd50715},
	{0xb2f635e5365aab3f, 0x02c200e4b310d277},
	{0xf591c4b75eaeef66, 0x0234cd83c273db92},
	{0xef4fa125644b18a3, 0x0387af39371fc5b7},
	{0x8c3fb41de9d5ad4f, 0x02d2f2942c196af9},
	{0x3cffc34b2177bdd9, 0x02425ba9bce12261},
	{0x94cc6bab68bf9628, 0x039d5f75fb01d09b},
	{0x10a38955ed6611b9, 0x02e44c5e6267da16},
	{0xda1c6dde5784dafb, 0x02503d184eb97b44},
	{0xf693e2fd58d49191, 0x03b394f3b128c53a},
	{0xc5431bfde0aa0e0e, 0x02f610c2f4209dc8},
	{0x6a9c1664b3bb3e72, 0x025e73cf29b3b16d},
	{0x10f9bd6dec5eca4f, 0x03ca52e50f85e8af},
	{0xda616457f04bd50c, 0x03084250d937ed58},
	{0xe1e783798d09773d, 0x026d01da475ff113},
	{0x030c058f480f252e, 0x03e19c9072331b53},
	{0x68d66ad906728425, 0x031ae3a6c1c27c42},
	{0x8711ef14052869b7, 0x027be952349b969b},
	{0x0b4fe4ecd50d75f2, 0x03f97550542c242c},
	{0xa2a650bd773df7f5, 0x032df7737689b689},
	{0xb551da312c31932a, 0x028b2c5c5ed49207},
	{0x5ddb14f4235adc22, 0x0208f049e576db39},
	{0x2fc4ee536bc49369, 0x034180763bf15ec2},
	{0xbfd0bea92303a921, 0x029acd2b63277f01},
	{0x9973cbba8269541a, 0x021570ef8285ff34},
	{0x5bec792a6a42202a, 0x0355817f373ccb87},
	{0xe3239421ee9b4cef, 0x02aacdff5f63d605},
	{0xb5b6101b25490a59, 0x02223e65e5e97804},
	{0x22bce691d541aa27, 0x0369fd6fd64259a1},
	{0xb563eba7ddce21b9, 0x02bb31264501e14d},
	{0xf78322ecb171b494, 0x022f5a850401810a},
	{0x259e9e47824f8753, 0x037ef73b399c01ab},
	{0x1e187e9f9b72d2a9, 0x02cbf8fc2e1667bc},
	{0x4b46cbb2e2c24221, 0x023cc73024deb963},
	{0x120adf849e039d01, 0x039471e6a1645bd2},
	{0xdb3be603b19c7d9a, 0x02dd27ebb4504974},
	{0x7c2feb3627b0647c, 0x024a865629d9d45d},
	{0x2d197856a5e7072c, 0x03aa7089dc8fba2f},
	{0x8a7ac6abb7ec05bd, 0x02eec06e4a0c94f2},
	{0xd52f05562cbcd164, 0x025899f1d4d6dd8e},
	{0x21e4d556adfae8a0, 0x03c0f64fbaf1627e},
	{0xe7ea444557fbed4d, 0x0300c50c958de864},
	{0xecbb69d1132ff10a, 0x0267040a113e5383},
	{0xadf8a94e851981aa, 0x03d8067681fd526c},
	{0x8b2d543ed0e13488, 0x0313385ece6441f0},
	{0xd5bddcff0d80f6d3, 0x0275c6b23eb69b26},
	{0x892fc7fe7c018aeb, 0x03efa45064575ea4},
	{0x3a8c9ffec99ad589, 0x03261d0d1d12b21d},
	{0xc8707fff07af113b, 0x0284e40a7da88e7d},
	{0x39f39998d2f2742f, 0x0203e9a1fe2071fe},
	{0x8fec28f484b7204b, 0x033975cffd00b663},
	{0xd989ba5d36f8e6a2, 0x02945e3ffd9a2b82},
	{0x47a161e42bfa521c, 0x02104b66647b5602},
	{0x0c35696d132a1cf9, 0x034d4570a0c5566a},
	{0x09c454574288172d, 0x02a4378d4d6aab88},
	{0xa169dd129ba0128b, 0x021cf93dd7888939},
	{0x0242fb50f9001dab, 0x03618ec958da7529},
	{0x9b68c90d940017bc, 0x02b4723aad7b90ed},
	{0x4920a0d7a999ac96, 0x0229f4fbbdfc73f1},
	{0x750101590f5c4757, 0x037654c5fcc71fe8},
	{0x2a6734473f7d05df, 0x02c5109e63d27fed},
	{0xeeb8f69f65fd9e4c, 0x0237407eb641fff0},
	{0xe45b24323cc8fd46, 0x038b9a6456cfffe7},
	{0xb6af502830a0ca9f, 0x02d6151d123fffec},
	{0xf88c402026e7087f, 0x0244ddb0db666656},
	{0x2746cd003e3e73fe, 0x03a162b4923d708b},
	{0x1f6bd73364fec332, 0x02e7822a0e978d3c},
	{0xe5efdf5c50cbcf5b, 0x0252ce880bac70fc},
	{0x3cb2fefa1adfb22b, 0x03b7b0d9ac471b2e},
	{0x308f3261af195b56, 0x02f95a47bd05af58},
	{0x5a0c284e25ade2ab, 0x0261150630d15913},
	{0x29ad0d49d5e30445, 0x03ce8809e7b55b52},
	{0x548a7107de4f369d, 0x030ba007ec9115db},
	{0xdd3b8d9fe50c2bb1, 0x026fb3398a0dab15},
	{0x952c15cca1ad12b5, 0x03e5eb8f434911bc},
	{0x775677d6e7bda891, 0x031e560c35d40e30},
	{0xc5dec645863153a7, 0x027eab3cf7dcd826},
}
