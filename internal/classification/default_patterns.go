package classification

import "github.com/Veraticus/hashid/internal/model"

// DefaultPatterns returns the built-in digest shapes in evaluation order.
// Shapes overlap on purpose: one input commonly satisfies several entries.
// RE2 caps a counted repetition at 1000, so longer runs are split into
// consecutive bounded runs that accept the same lengths.
func DefaultPatterns() []Pattern {
	return []Pattern{
		// Checksums.
		{
			Regex: `^[a-f0-9]{4}$`,
			Modes: []model.HashMode{
				{Name: "CRC-16"},
				{Name: "CRC-16-CCITT"},
				{Name: "FCS-16"},
			},
		},
		{
			Regex: `^[a-f0-9]{8}$`,
			Modes: []model.HashMode{
				{Name: "Adler-32"},
				{Name: "CRC-32B"},
				{Name: "FCS-32"},
				{Name: "GHash-32-3"},
				{Name: "GHash-32-5"},
				{Name: "FNV-132"},
				{Name: "Fletcher-32"},
				{Name: "Joaat"},
				{Name: "ELF-32"},
				{Name: "XOR-32"},
			},
		},
		{
			Regex: `^[a-f0-9]{6}$`,
			Modes: []model.HashMode{
				{Name: "CRC-24"},
			},
		},
		{
			Regex: `^(\$crc32\$[a-f0-9]{8}.)?[a-f0-9]{8}$`,
			Modes: []model.HashMode{
				{Name: "CRC-32", John: john("crc32")},
			},
		},

		// Short crypt(3) and legacy fixed-width formats.
		{
			Regex: `^\+[a-z0-9\/.]{12}$`,
			Modes: []model.HashMode{
				{Name: "Eggdrop IRC Bot", John: john("bfegg")},
			},
		},
		{
			Regex: `^[a-z0-9\/.]{13}$`,
			Modes: []model.HashMode{
				{Name: "DES(Unix)", Hashcat: hashcat(1500), John: john("descrypt")},
				{Name: "Traditional DES", Hashcat: hashcat(1500), John: john("descrypt")},
				{Name: "DEScrypt", Hashcat: hashcat(1500), John: john("descrypt")},
			},
		},
		{
			Regex: `^[a-f0-9]{16}$`,
			Modes: []model.HashMode{
				{Name: "MySQL323", Hashcat: hashcat(200), John: john("mysql")},
				{Name: "DES(Oracle)", Hashcat: hashcat(3100)},
				{Name: "Half MD5", Hashcat: hashcat(5100)},
				{Name: "Oracle 7-10g", Hashcat: hashcat(3100)},
				{Name: "FNV-164"},
				{Name: "CRC-64"},
			},
		},
		{
			Regex: `^[a-z0-9\/.]{16}$`,
			Modes: []model.HashMode{
				{Name: "Cisco-PIX(MD5)", Hashcat: hashcat(2400), John: john("pix-md5")},
			},
		},
		{
			Regex: `^\([a-z0-9\/+]{20}\)$`,
			Modes: []model.HashMode{
				{Name: "Lotus Notes/Domino 6", Hashcat: hashcat(8700), John: john("dominosec")},
			},
		},
		{
			Regex: `^_[a-z0-9\/.]{19}$`,
			Modes: []model.HashMode{
				{Name: "BSDi Crypt", John: john("bsdicrypt")},
			},
		},
		{
			Regex: `^[a-f0-9]{24}$`,
			Modes: []model.HashMode{
				{Name: "CRC-96(ZIP)"},
			},
		},
		{
			Regex: `^[a-z0-9\/.]{24}$`,
			Modes: []model.HashMode{
				{Name: "Crypt16"},
			},
		},

		// 128-bit digests, plain and salted.
		{
			Regex: `^(\$md2\$)?[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "MD2"},
			},
		},
		{
			Regex: `^[a-f0-9]{32}(:.+)?$`,
			Modes: []model.HashMode{
				{Name: "MD5", Hashcat: hashcat(0), John: john("raw-md5")},
				{Name: "MD4", Hashcat: hashcat(900), John: john("raw-md4")},
				{Name: "Double MD5", Hashcat: hashcat(2600)},
				{Name: "LM", Hashcat: hashcat(3000), John: john("lm")},
				{Name: "RIPEMD-128", John: john("ripemd-128")},
				{Name: "Haval-128", John: john("haval-128-4")},
				{Name: "Tiger-128"},
				{Name: "Snefru-128", John: john("snefru-128")},
				{Name: "Skein-256(128)"},
				{Name: "Skein-512(128)"},
				{Name: "Lotus Notes/Domino 5", Hashcat: hashcat(8600), John: john("lotus5")},
				{Name: "ZipMonster", Extended: true},
				{Name: "md5(md5(md5($pass)))", Hashcat: hashcat(3500), Extended: true},
				{Name: "md5(strtoupper(md5($pass)))", Hashcat: hashcat(4300), Extended: true},
				{Name: "md5(sha1($pass))", Hashcat: hashcat(4400), Extended: true},
				{Name: "md5($pass.$salt)", Hashcat: hashcat(10), Extended: true},
				{Name: "md5($salt.$pass)", Hashcat: hashcat(20), Extended: true},
				{Name: "md5(unicode($pass).$salt)", Hashcat: hashcat(30), Extended: true},
				{Name: "md5($salt.unicode($pass))", Hashcat: hashcat(40), Extended: true},
				{Name: "HMAC-MD5 (key = $pass)", Hashcat: hashcat(50), Extended: true},
				{Name: "HMAC-MD5 (key = $salt)", Hashcat: hashcat(60), Extended: true},
				{Name: "md5(md5($salt).$pass)", Hashcat: hashcat(3610), Extended: true},
				{Name: "md5($salt.md5($pass))", Hashcat: hashcat(3710), Extended: true},
				{Name: "md5($pass.md5($salt))", Hashcat: hashcat(3720), Extended: true},
				{Name: "md5($salt.$pass.$salt)", Hashcat: hashcat(3810), Extended: true},
				{Name: "md5(md5($pass).md5($salt))", Hashcat: hashcat(3910), Extended: true},
				{Name: "md5($salt.md5($salt.$pass))", Hashcat: hashcat(4010), Extended: true},
				{Name: "md5($salt.md5($pass.$salt))", Hashcat: hashcat(4110), Extended: true},
				{Name: "md5($username.0.$pass)", Hashcat: hashcat(4210), Extended: true},
				{Name: "Skype", Hashcat: hashcat(23)},
			},
		},
		{
			Regex: `^(\$NT\$)?[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "NTLM", Hashcat: hashcat(1000), John: john("nt")},
			},
		},
		{
			Regex: `^[a-f0-9]{32}(:[^\\\/:*?"<>|]{1,20})?$`,
			Modes: []model.HashMode{
				{Name: "Domain Cached Credentials", Hashcat: hashcat(1100), John: john("mscach")},
				{Name: "mscash", Hashcat: hashcat(1100), John: john("mscach"), Extended: true},
			},
		},
		{
			Regex: `^(\$DCC2\$10240#[^\\\/:*?"<>|]{1,20}#)?[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "Domain Cached Credentials 2", Hashcat: hashcat(2100), John: john("mscach2")},
				{Name: "mscash2", Hashcat: hashcat(2100), John: john("mscach2"), Extended: true},
			},
		},
		{
			Regex: `^\{SHA\}[a-z0-9\/+]{27}=$`,
			Modes: []model.HashMode{
				{Name: "SHA-1(Base64)", Hashcat: hashcat(101), John: john("nsldap")},
				{Name: "Netscape LDAP SHA", Hashcat: hashcat(101), John: john("nsldap")},
				{Name: "nsldap", Hashcat: hashcat(101), John: john("nsldap"), Extended: true},
			},
		},
		{
			Regex: `^\$1\$[a-z0-9\/.]{0,8}\$[a-z0-9\/.]{22}(:.*)?$`,
			Modes: []model.HashMode{
				{Name: "MD5 Crypt", Hashcat: hashcat(500), John: john("md5crypt")},
				{Name: "Cisco-IOS(MD5)", Hashcat: hashcat(500), John: john("md5crypt")},
				{Name: "FreeBSD MD5", Hashcat: hashcat(500), John: john("md5crypt")},
			},
		},
		{
			Regex: `^0x[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "Lineage II C4"},
			},
		},
		{
			Regex: `^\$H\$[a-z0-9\/.]{31}$`,
			Modes: []model.HashMode{
				{Name: "phpBB v3.x", Hashcat: hashcat(400), John: john("phpass")},
				{Name: "Wordpress v2.6.0/2.6.1", Hashcat: hashcat(400), John: john("phpass")},
				{Name: "PHPass' Portable Hash", Hashcat: hashcat(400), John: john("phpass")},
			},
		},
		{
			Regex: `^\$P\$[a-z0-9\/.]{31}$`,
			Modes: []model.HashMode{
				{Name: "Wordpress ≥ v2.6.2", Hashcat: hashcat(400)},
				{Name: "Joomla ≥ v2.5.18", Hashcat: hashcat(400)},
				{Name: "PHPass' Portable Hash", Hashcat: hashcat(400)},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:[a-z0-9]{2}$`,
			Modes: []model.HashMode{
				{Name: "osCommerce", Hashcat: hashcat(21)},
				{Name: "xt:Commerce", Hashcat: hashcat(21)},
			},
		},
		{
			Regex: `^\$apr1\$[a-z0-9\/.]{0,8}\$[a-z0-9\/.]{22}$`,
			Modes: []model.HashMode{
				{Name: "MD5(APR)", Hashcat: hashcat(1600)},
				{Name: "Apache MD5", Hashcat: hashcat(1600)},
				{Name: "md5apr1", Hashcat: hashcat(1600), Extended: true},
			},
		},
		{
			Regex: `^\{smd5\}[a-z0-9$\/.]{31}$`,
			Modes: []model.HashMode{
				{Name: "AIX(smd5)", Hashcat: hashcat(6300), John: john("aix-smd5")},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "WebEdition CMS", Hashcat: hashcat(3721)},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:.{5}$`,
			Modes: []model.HashMode{
				{Name: "IP.Board ≥ v2+", Hashcat: hashcat(2811)},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:.{8}$`,
			Modes: []model.HashMode{
				{Name: "MyBB ≥ v1.2+", Hashcat: hashcat(2811)},
			},
		},
		{
			Regex: `^[a-z0-9]{34}$`,
			Modes: []model.HashMode{
				{Name: "CryptoCurrency(Adress)"},
			},
		},

		// 160-bit digests and their vendor envelopes.
		{
			Regex: `^[a-f0-9]{40}(:.+)?$`,
			Modes: []model.HashMode{
				{Name: "SHA-1", Hashcat: hashcat(100), John: john("raw-sha1")},
				{Name: "Double SHA-1", Hashcat: hashcat(4500)},
				{Name: "RIPEMD-160", Hashcat: hashcat(6000), John: john("ripemd-160")},
				{Name: "Haval-160"},
				{Name: "Tiger-160"},
				{Name: "HAS-160"},
				{Name: "LinkedIn", Hashcat: hashcat(190), John: john("raw-sha1-linkedin")},
				{Name: "Skein-256(160)"},
				{Name: "Skein-512(160)"},
				{Name: "MangosWeb Enhanced CMS", Extended: true},
				{Name: "sha1(sha1(sha1($pass)))", Hashcat: hashcat(4600), Extended: true},
				{Name: "sha1(md5($pass))", Hashcat: hashcat(4700), Extended: true},
				{Name: "sha1($pass.$salt)", Hashcat: hashcat(110), Extended: true},
				{Name: "sha1($salt.$pass)", Hashcat: hashcat(120), Extended: true},
				{Name: "sha1(unicode($pass).$salt)", Hashcat: hashcat(130), Extended: true},
				{Name: "sha1($salt.unicode($pass))", Hashcat: hashcat(140), Extended: true},
				{Name: "HMAC-SHA1 (key = $pass)", Hashcat: hashcat(150), Extended: true},
				{Name: "HMAC-SHA1 (key = $salt)", Hashcat: hashcat(160), Extended: true},
				{Name: "sha1($salt.$pass.$salt)", Hashcat: hashcat(4710), Extended: true},
			},
		},
		{
			Regex: `^\*[a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "MySQL5.x", Hashcat: hashcat(300), John: john("mysql-sha1")},
				{Name: "MySQL4.1", Hashcat: hashcat(300), John: john("mysql-sha1")},
			},
		},
		{
			Regex: `^[a-z0-9]{43}$`,
			Modes: []model.HashMode{
				{Name: "Cisco-IOS(SHA-256)", Hashcat: hashcat(5700)},
			},
		},
		{
			Regex: `^\{SSHA\}[a-z0-9\/+]{38}==$`,
			Modes: []model.HashMode{
				{Name: "SSHA-1(Base64)", Hashcat: hashcat(111)},
				{Name: "Netscape LDAP SSHA", Hashcat: hashcat(111), John: john("ssha")},
				{Name: "nsldaps", Hashcat: hashcat(111), Extended: true},
			},
		},
		{
			Regex: `^[a-z0-9=]{47}$`,
			Modes: []model.HashMode{
				{Name: "Fortigate(FortiOS)", Hashcat: hashcat(7000), John: john("fortigate")},
			},
		},
		{
			Regex: `^[a-f0-9]{48}$`,
			Modes: []model.HashMode{
				{Name: "Haval-192"},
				{Name: "Tiger-192", John: john("tiger")},
				{Name: "SHA-1(Oracle)"},
				{Name: "OSX v10.4", Hashcat: hashcat(122), John: john("xsha")},
				{Name: "OSX v10.5", Hashcat: hashcat(122), John: john("xsha")},
				{Name: "OSX v10.6", Hashcat: hashcat(122), John: john("xsha")},
			},
		},
		{
			Regex: `^[a-f0-9]{51}$`,
			Modes: []model.HashMode{
				{Name: "Palshop CMS"},
			},
		},
		{
			Regex: `^[a-z0-9]{51}$`,
			Modes: []model.HashMode{
				{Name: "CryptoCurrency(PrivateKey)"},
			},
		},
		{
			Regex: `^\{ssha1\}[a-z0-9$\/.]{47}$`,
			Modes: []model.HashMode{
				{Name: "AIX(ssha1)", Hashcat: hashcat(6700), John: john("aix-ssha1")},
			},
		},
		{
			Regex: `^0x0100[a-f0-9]{48}$`,
			Modes: []model.HashMode{
				{Name: "MSSQL(2005)", Hashcat: hashcat(132), John: john("mssql05")},
				{Name: "MSSQL(2008)", Hashcat: hashcat(132)},
			},
		},
		{
			Regex: `^(\$md5,rounds=[0-9]+\$|\$md5\$rounds=[0-9]+\$|\$md5\$)[a-z0-9\/.]{0,16}(\$|\$\$)[a-z0-9\/.]{22}$`,
			Modes: []model.HashMode{
				{Name: "Sun MD5 Crypt", Hashcat: hashcat(3300), John: john("sunmd5")},
			},
		},

		// 224-bit digests and bcrypt family.
		{
			Regex: `^[a-f0-9]{56}$`,
			Modes: []model.HashMode{
				{Name: "SHA-224", John: john("raw-sha224")},
				{Name: "Haval-224"},
				{Name: "SHA3-224"},
				{Name: "Skein-256(224)"},
				{Name: "Skein-512(224)"},
			},
		},
		{
			Regex: `^(\$2[axy]|\$2)\$[0-9]{0,2}?\$[a-z0-9\/.]{53}$`,
			Modes: []model.HashMode{
				{Name: "Blowfish(OpenBSD)", Hashcat: hashcat(3200), John: john("bcrypt")},
				{Name: "Woltlab Burning Board 4.x"},
				{Name: "BCrypt", Hashcat: hashcat(3200), John: john("bcrypt")},
			},
		},
		{
			Regex: `^[a-f0-9]{40}:[a-f0-9]{16}$`,
			Modes: []model.HashMode{
				{Name: "Android PIN", Hashcat: hashcat(5800)},
			},
		},
		{
			Regex: `^(S:)?[a-f0-9]{40}(:)?[a-f0-9]{20}$`,
			Modes: []model.HashMode{
				{Name: "Oracle 11g/12c", Hashcat: hashcat(112), John: john("oracle11")},
			},
		},
		{
			Regex: `^\$bcrypt-sha256\$(2[axy]|2)\,[0-9]+\$[a-z0-9\/.]{22}\$[a-z0-9\/.]{31}$`,
			Modes: []model.HashMode{
				{Name: "BCrypt(SHA-256)"},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:.{3}$`,
			Modes: []model.HashMode{
				{Name: "vBulletin < v3.8.5", Hashcat: hashcat(2611)},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:.{30}$`,
			Modes: []model.HashMode{
				{Name: "vBulletin ≥ v3.8.5", Hashcat: hashcat(2711)},
			},
		},

		// 256-bit digests and wider raw hex.
		{
			Regex: `^(\$snefru\$)?[a-f0-9]{64}$`,
			Modes: []model.HashMode{
				{Name: "Snefru-256", John: john("snefru-256")},
			},
		},
		{
			Regex: `^[a-f0-9]{64}(:.+)?$`,
			Modes: []model.HashMode{
				{Name: "SHA-256", Hashcat: hashcat(1400), John: john("raw-sha256")},
				{Name: "RIPEMD-256"},
				{Name: "Haval-256", John: john("haval-256-3")},
				{Name: "GOST R 34.11-94", Hashcat: hashcat(6900), John: john("gost")},
				{Name: "SHA3-256", Hashcat: hashcat(5000), John: john("raw-keccak-256")},
				{Name: "Skein-256", John: john("skein-256")},
				{Name: "Skein-512(256)"},
				{Name: "Ventrilo", Extended: true},
				{Name: "sha256($pass.$salt)", Hashcat: hashcat(1410), Extended: true},
				{Name: "sha256($salt.$pass)", Hashcat: hashcat(1420), Extended: true},
				{Name: "sha256(unicode($pass).$salt)", Hashcat: hashcat(1430), Extended: true},
				{Name: "sha256($salt.unicode($pass))", Hashcat: hashcat(1440), Extended: true},
				{Name: "HMAC-SHA256 (key = $pass)", Hashcat: hashcat(1450), Extended: true},
				{Name: "HMAC-SHA256 (key = $salt)", Hashcat: hashcat(1460), Extended: true},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:[a-z0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "Joomla < v2.5.18", Hashcat: hashcat(11)},
			},
		},
		{
			Regex: `^[a-f\-0-9]{32}:[a-f\-0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "SAM(LM_Hash:NT_Hash)"},
			},
		},
		{
			Regex: `^(\$chap\$0\*)?[a-f0-9]{32}[\*:][a-f0-9]{32}(:[0-9]{2})?$`,
			Modes: []model.HashMode{
				{Name: "MD5(Chap)", Hashcat: hashcat(4800), John: john("chap")},
				{Name: "iSCSI CHAP Authentication", Hashcat: hashcat(4800), John: john("chap")},
			},
		},
		{
			Regex: `^\$episerver\$\*0\*[a-z0-9*\/=+]{52,53}$`,
			Modes: []model.HashMode{
				{Name: "EPiServer 6.x < v4", Hashcat: hashcat(141), John: john("episerver")},
			},
		},
		{
			Regex: `^\{ssha256\}[a-z0-9$\/.]{63}$`,
			Modes: []model.HashMode{
				{Name: "AIX(ssha256)", Hashcat: hashcat(6400), John: john("aix-ssha256")},
			},
		},
		{
			Regex: `^[a-f0-9]{80}$`,
			Modes: []model.HashMode{
				{Name: "RIPEMD-320"},
			},
		},
		{
			Regex: `^\$episerver\$\*1\*[a-z0-9=*+]{68}$`,
			Modes: []model.HashMode{
				{Name: "EPiServer 6.x ≥ v4", Hashcat: hashcat(1441)},
			},
		},
		{
			Regex: `^0x0100[a-f0-9]{88}$`,
			Modes: []model.HashMode{
				{Name: "MSSQL(2000)", Hashcat: hashcat(131), John: john("mssql")},
			},
		},
		{
			Regex: `^[a-f0-9]{96}$`,
			Modes: []model.HashMode{
				{Name: "SHA-384", Hashcat: hashcat(10800), John: john("raw-sha384")},
				{Name: "SHA3-384"},
				{Name: "Skein-512(384)"},
				{Name: "Skein-1024(384)"},
			},
		},
		{
			Regex: `^\{SSHA512\}[a-z0-9\/+]{96}$`,
			Modes: []model.HashMode{
				{Name: "SSHA-512(Base64)", Hashcat: hashcat(1711), John: john("ssha512")},
				{Name: "LDAP(SSHA-512)", Hashcat: hashcat(1711), John: john("ssha512")},
			},
		},
		{
			Regex: `^\{ssha512\}[0-9]{2}\$[a-z0-9\/.]{16,48}\$[a-z0-9\/.]{86}$`,
			Modes: []model.HashMode{
				{Name: "AIX(ssha512)", Hashcat: hashcat(6500), John: john("aix-ssha512")},
			},
		},
		{
			Regex: `^[a-f0-9]{128}(:.+)?$`,
			Modes: []model.HashMode{
				{Name: "SHA-512", Hashcat: hashcat(1700), John: john("raw-sha512")},
				{Name: "Whirlpool", Hashcat: hashcat(6100), John: john("whirlpool")},
				{Name: "Salsa10"},
				{Name: "Salsa20"},
				{Name: "SHA3-512", John: john("raw-keccak")},
				{Name: "Skein-512", John: john("skein-512")},
				{Name: "Skein-1024(512)"},
				{Name: "sha512($pass.$salt)", Hashcat: hashcat(1710), Extended: true},
				{Name: "sha512($salt.$pass)", Hashcat: hashcat(1720), Extended: true},
				{Name: "sha512(unicode($pass).$salt)", Hashcat: hashcat(1730), Extended: true},
				{Name: "sha512($salt.unicode($pass))", Hashcat: hashcat(1740), Extended: true},
				{Name: "HMAC-SHA512 (key = $pass)", Hashcat: hashcat(1750), Extended: true},
				{Name: "HMAC-SHA512 (key = $salt)", Hashcat: hashcat(1760), Extended: true},
			},
		},
		{
			Regex: `^[a-f0-9]{136}$`,
			Modes: []model.HashMode{
				{Name: "OSX v10.7", Hashcat: hashcat(1722), John: john("xsha512")},
			},
		},
		{
			Regex: `^0x0200[a-f0-9]{136}$`,
			Modes: []model.HashMode{
				{Name: "MSSQL(2012)", Hashcat: hashcat(1731), John: john("msql12")},
				{Name: "MSSQL(2014)", Hashcat: hashcat(1731), John: john("msql12")},
			},
		},
		{
			Regex: `^\$ml\$[0-9]+\$[a-f0-9]{64}\$[a-f0-9]{128}$`,
			Modes: []model.HashMode{
				{Name: "OSX v10.8", Hashcat: hashcat(7100), John: john("pbkdf2-hmac-sha512")},
				{Name: "OSX v10.9", Hashcat: hashcat(7100), John: john("pbkdf2-hmac-sha512")},
			},
		},

		// Framework and vendor envelopes.
		{
			Regex: `^[a-f0-9]{256}$`,
			Modes: []model.HashMode{
				{Name: "Skein-1024"},
			},
		},
		{
			Regex: `^grub\.pbkdf2\.sha512\.[0-9]+\.[a-f0-9]{128}[a-f0-9]{0,1000}[a-f0-9]{0,920}\.[a-f0-9]{128}$`,
			Modes: []model.HashMode{
				{Name: "GRUB 2", Hashcat: hashcat(7200)},
			},
		},
		{
			Regex: `^sha1\$[a-f0-9]{1,}\$[a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "Django(SHA-1)", Hashcat: hashcat(124)},
			},
		},
		{
			Regex: `^[a-f0-9]{49}$`,
			Modes: []model.HashMode{
				{Name: "Citrix Netscaler", Hashcat: hashcat(8100), John: john("citrix_ns10")},
			},
		},
		{
			Regex: `^\$S\$[a-z0-9\/.]{52}$`,
			Modes: []model.HashMode{
				{Name: "Drupal > v7.x", Hashcat: hashcat(7900), John: john("drupal7")},
			},
		},
		{
			Regex: `^\$5\$(rounds=[0-9]+\$)?[a-z0-9\/.]{0,16}\$[a-z0-9\/.]{43}$`,
			Modes: []model.HashMode{
				{Name: "SHA-256 Crypt", Hashcat: hashcat(7400), John: john("sha256crypt")},
			},
		},
		{
			Regex: `^0x[a-f0-9]{4}[a-f0-9]{16}[a-f0-9]{64}$`,
			Modes: []model.HashMode{
				{Name: "Sybase ASE", Hashcat: hashcat(8000), John: john("sybasease")},
			},
		},
		{
			Regex: `^\$6\$(rounds=[0-9]+\$)?[a-z0-9\/.]{0,16}\$[a-z0-9\/.]{86}$`,
			Modes: []model.HashMode{
				{Name: "SHA-512 Crypt", Hashcat: hashcat(1800), John: john("sha512crypt")},
			},
		},
		{
			Regex: `^\$sha\$[a-z0-9]{1,16}\$([a-f0-9]{32}|[a-f0-9]{40}|[a-f0-9]{64}|[a-f0-9]{128}|[a-f0-9]{140})$`,
			Modes: []model.HashMode{
				{Name: "Minecraft(AuthMe Reloaded)"},
			},
		},
		{
			Regex: `^sha256\$[a-f0-9]{1,}\$[a-f0-9]{64}$`,
			Modes: []model.HashMode{
				{Name: "Django(SHA-256)"},
			},
		},
		{
			Regex: `^sha384\$[a-f0-9]{1,}\$[a-f0-9]{96}$`,
			Modes: []model.HashMode{
				{Name: "Django(SHA-384)"},
			},
		},
		{
			Regex: `^crypt1:[a-z0-9+=]{12}:[a-z0-9+=]{12}$`,
			Modes: []model.HashMode{
				{Name: "Clavister Secure Gateway"},
			},
		},
		{
			Regex: `^[a-f0-9]{112}$`,
			Modes: []model.HashMode{
				{Name: "Cisco VPN Client(PCF-File)"},
			},
		},
		{
			Regex: `^[a-f0-9]{1000}[a-f0-9]{329}$`,
			Modes: []model.HashMode{
				{Name: "Microsoft MSTSC(RDP-File)"},
			},
		},

		// Network authentication captures.
		{
			Regex: `^[^\\\/:*?"<>|]{1,20}::[^\\\/:*?"<>|]{1,20}:[a-f0-9]{48}:[a-f0-9]{48}:[a-f0-9]{16}$`,
			Modes: []model.HashMode{
				{Name: "NetNTLMv1-VANILLA / NetNTLMv1+ESS", Hashcat: hashcat(5500)},
			},
		},
		{
			Regex: `^[^\\\/:*?"<>|]{1,20}::[^\\\/:*?"<>|]{1,20}:[a-f0-9]{16}:[a-f0-9]{32}:[a-f0-9]+$`,
			Modes: []model.HashMode{
				{Name: "NetNTLMv2", Hashcat: hashcat(5600), John: john("netntlmv2")},
			},
		},
		{
			Regex: `^\$(krb5pa|mskrb5)\$([0-9]{2})?\$.+\$[a-f0-9]{1,}$`,
			Modes: []model.HashMode{
				{Name: "Kerberos 5 AS-REQ Pre-Auth", Hashcat: hashcat(7500), John: john("krb5pa-md5")},
			},
		},
		{
			Regex: `^\$scram\$[0-9]+\$[a-z0-9\/.]{16}\$sha-1=[a-z0-9\/.]{27},sha-256=[a-z0-9\/.]{43},sha-512=[a-z0-9\/.]{86}$`,
			Modes: []model.HashMode{
				{Name: "SCRAM Hash"},
			},
		},

		// Salted application formats.
		{
			Regex: `^[a-f0-9]{40}:[a-f0-9]{0,32}$`,
			Modes: []model.HashMode{
				{Name: "Redmine Project Management Web App", Hashcat: hashcat(7600)},
			},
		},
		{
			Regex: `^(.+)?\$[a-f0-9]{16}$`,
			Modes: []model.HashMode{
				{Name: "SAP CODVN B (BCODE)", Hashcat: hashcat(7700), John: john("sapb")},
			},
		},
		{
			Regex: `^(.+)?\$[a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "SAP CODVN F/G (PASSCODE)", Hashcat: hashcat(7800), John: john("sapg")},
			},
		},
		{
			Regex: `^(.+\$)?[a-z0-9\/.]{30}(:.+)?$`,
			Modes: []model.HashMode{
				{Name: "Juniper Netscreen/SSG(ScreenOS)", Hashcat: hashcat(22), John: john("md5ns")},
			},
		},
		{
			Regex: `^0x[a-f0-9]{60}\s0x[a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "EPi", Hashcat: hashcat(123)},
			},
		},
		{
			Regex: `^[a-f0-9]{40}:[^*]{1,25}$`,
			Modes: []model.HashMode{
				{Name: "SMF ≥ v1.1", Hashcat: hashcat(121)},
			},
		},
		{
			Regex: `^(\$wbb3\$\*1\*)?[a-f0-9]{40}[:*][a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "Woltlab Burning Board 3.x", Hashcat: hashcat(8400), John: john("wbb3")},
			},
		},
		{
			Regex: `^[a-f0-9]{130}(:[a-f0-9]{40})?$`,
			Modes: []model.HashMode{
				{Name: "IPMI2 RAKP HMAC-SHA1", Hashcat: hashcat(7300)},
			},
		},
		{
			Regex: `^[a-f0-9]{32}:[0-9]+:[a-z0-9_.+-]+@[a-z0-9-]+\.[a-z0-9-.]+$`,
			Modes: []model.HashMode{
				{Name: "Lastpass", Hashcat: hashcat(6800)},
			},
		},
		{
			Regex: `^[a-z0-9\/.]{16}([:$].{1,})?$`,
			Modes: []model.HashMode{
				{Name: "Cisco-ASA(MD5)", Hashcat: hashcat(2410), John: john("asa-md5")},
			},
		},
		{
			Regex: `^\$vnc\$\*[a-f0-9]{32}\*[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "VNC", John: john("vnc")},
			},
		},
		{
			Regex: `^[a-z0-9]{32}(:([a-z0-9-]+\.)?[a-z0-9-.]+\.[a-z]{2,7}:.+:[0-9]+)?$`,
			Modes: []model.HashMode{
				{Name: "DNSSEC(NSEC3)", Hashcat: hashcat(8300)},
			},
		},
		{
			Regex: `^(user-.+:)?\$racf\$\*.+\*[a-f0-9]{16}$`,
			Modes: []model.HashMode{
				{Name: "RACF", Hashcat: hashcat(8500), John: john("racf")},
			},
		},
		{
			Regex: `^\$3\$\$[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "NTHash(FreeBSD Variant)"},
			},
		},
		{
			Regex: `^\$sha1\$[0-9]+\$[a-z0-9\/.]{0,64}\$[a-z0-9\/.]{28}$`,
			Modes: []model.HashMode{
				{Name: "SHA-1 Crypt", John: john("sha1crypt")},
			},
		},
		{
			Regex: `^[a-f0-9]{70}$`,
			Modes: []model.HashMode{
				{Name: "hMailServer", Hashcat: hashcat(1421), John: john("hmailserver")},
			},
		},
		{
			Regex: `^[:\$][AB][:\$]([a-f0-9]{1,8}[:\$])?[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "MediaWiki", Hashcat: hashcat(3711), John: john("mediawiki")},
			},
		},
		{
			Regex: `^[a-f0-9]{140}$`,
			Modes: []model.HashMode{
				{Name: "Minecraft(xAuth)"},
			},
		},

		// Key derivation functions and document encryption.
		{
			Regex: `^\$pbkdf2-sha(1|256|512)\$[0-9]+\$[a-z0-9\/.]{22}\$([a-z0-9\/.]{27}|[a-z0-9\/.]{43}|[a-z0-9\/.]{86})$`,
			Modes: []model.HashMode{
				{Name: "PBKDF2(Generic)", John: john("pbkdf2-hmac-sha256")},
			},
		},
		{
			Regex: `^\$p5k2\$[0-9]+\$[a-z0-9\/+=-]+\$[a-z0-9\/+-]{27}=$`,
			Modes: []model.HashMode{
				{Name: "PBKDF2(Cryptacular)"},
			},
		},
		{
			Regex: `^\$p5k2\$[0-9]+\$[a-z0-9\/.]+\$[a-z0-9\/.]{32}$`,
			Modes: []model.HashMode{
				{Name: "PBKDF2(Dwayne Litzenberger)"},
			},
		},
		{
			Regex: `^\{FSHP[0123]\|[0-9]+\|[0-9]+\}[a-z0-9\/+=]+$`,
			Modes: []model.HashMode{
				{Name: "Fairly Secure Hashed Password"},
			},
		},
		{
			Regex: `^\$PHPS\$.+\$[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "PHPS", Hashcat: hashcat(2612), John: john("phps")},
			},
		},
		{
			Regex: `^[0-9]{4}:[a-f0-9]{16}:[a-f0-9]{1000}[a-f0-9]{1000}[a-f0-9]{80}$`,
			Modes: []model.HashMode{
				{Name: "1Password(Agile Keychain)", Hashcat: hashcat(6600)},
			},
		},
		{
			Regex: `^[a-f0-9]{64}:[a-f0-9]{32}:[0-9]{5}:[a-f0-9]{608}$`,
			Modes: []model.HashMode{
				{Name: "1Password(Cloud Keychain)", Hashcat: hashcat(8200)},
			},
		},
		{
			Regex: `^[a-f0-9]{256}:[a-f0-9]{256}:[a-f0-9]{16}:[a-f0-9]{16}:[a-f0-9]{320}:[a-f0-9]{16}:[a-f0-9]{40}:[a-f0-9]{40}:[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "IKE-PSK MD5", Hashcat: hashcat(5300)},
			},
		},
		{
			Regex: `^[a-f0-9]{256}:[a-f0-9]{256}:[a-f0-9]{16}:[a-f0-9]{16}:[a-f0-9]{320}:[a-f0-9]{16}:[a-f0-9]{40}:[a-f0-9]{40}:[a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "IKE-PSK SHA1", Hashcat: hashcat(5400)},
			},
		},
		{
			Regex: `^[a-z0-9\/+]{27}=$`,
			Modes: []model.HashMode{
				{Name: "PeopleSoft", Hashcat: hashcat(133)},
			},
		},
		{
			Regex: `^crypt\$[a-f0-9]{5}\$[a-z0-9\/.]{13}$`,
			Modes: []model.HashMode{
				{Name: "Django(DES Crypt Wrapper)"},
			},
		},
		{
			Regex: `^(\$django\$\*1\*)?pbkdf2_sha256\$[0-9]+\$[a-z0-9]{1,}\$[a-z0-9\/+]{43}=$`,
			Modes: []model.HashMode{
				{Name: "Django(PBKDF2-HMAC-SHA256)", Hashcat: hashcat(10000), John: john("django")},
			},
		},
		{
			Regex: `^pbkdf2_sha1\$[0-9]+\$[a-z0-9]{1,}\$[a-z0-9\/+]{27}=$`,
			Modes: []model.HashMode{
				{Name: "Django(PBKDF2-HMAC-SHA1)"},
			},
		},
		{
			Regex: `^bcrypt(\$2[axy]|\$2)\$[0-9]{0,2}?\$[a-z0-9\/.]{53}$`,
			Modes: []model.HashMode{
				{Name: "Django(BCrypt)"},
			},
		},
		{
			Regex: `^md5\$[a-f0-9]{1,}\$[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "Django(MD5)"},
			},
		},
		{
			Regex: `^\{PKCS5S2\}[a-z0-9\/+]{64}$`,
			Modes: []model.HashMode{
				{Name: "PBKDF2(Atlassian)"},
			},
		},
		{
			Regex: `^md5[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "PostgreSQL MD5"},
			},
		},
		{
			Regex: `^\([a-z0-9\/+]{49}\)$`,
			Modes: []model.HashMode{
				{Name: "Lotus Notes/Domino 8", Hashcat: hashcat(9100)},
			},
		},
		{
			Regex: `^SCRYPT:[0-9]{1,}:[0-9]{1}:[0-9]{1}:[a-z0-9:\/+=]{1,}$`,
			Modes: []model.HashMode{
				{Name: "scrypt", Hashcat: hashcat(8900)},
			},
		},
		{
			Regex: `^\$8\$[a-z0-9\/.]{14}\$[a-z0-9\/.]{43}$`,
			Modes: []model.HashMode{
				{Name: "Cisco Type 8", Hashcat: hashcat(9200)},
			},
		},
		{
			Regex: `^\$9\$[a-z0-9\/.]{14}\$[a-z0-9\/.]{43}$`,
			Modes: []model.HashMode{
				{Name: "Cisco Type 9", Hashcat: hashcat(9300)},
			},
		},
		{
			Regex: `^\$office\$\*2007\*[0-9]{2}\*[0-9]{3}\*[0-9]{2}\*[a-z0-9]{32}\*[a-z0-9]{32}\*[a-z0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "Microsoft Office 2007", Hashcat: hashcat(9400), John: john("office")},
			},
		},
		{
			Regex: `^\$office\$\*2010\*[0-9]{6}\*[0-9]{3}\*[0-9]{2}\*[a-z0-9]{32}\*[a-z0-9]{32}\*[a-z0-9]{64}$`,
			Modes: []model.HashMode{
				{Name: "Microsoft Office 2010", Hashcat: hashcat(9500)},
			},
		},
		{
			Regex: `^\$office\$\*2013\*[0-9]{6}\*[0-9]{3}\*[0-9]{2}\*[a-z0-9]{32}\*[a-z0-9]{32}\*[a-z0-9]{64}$`,
			Modes: []model.HashMode{
				{Name: "Microsoft Office 2013", Hashcat: hashcat(9600)},
			},
		},
		{
			Regex: `^\$fde\$[0-9]{2}\$[a-f0-9]{32}\$[0-9]{2}\$[a-f0-9]{32}\$[a-f0-9]{1000}[a-f0-9]{1000}[a-f0-9]{1000}[a-f0-9]{72}$`,
			Modes: []model.HashMode{
				{Name: "Android FDE ≤ 4.3", Hashcat: hashcat(8800)},
			},
		},
		{
			Regex: `^\$oldoffice\$[01]\*[a-f0-9]{32}\*[a-f0-9]{32}\*[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "Microsoft Office ≤ 2003 (MD5+RC4)", Hashcat: hashcat(9700), John: john("oldoffice")},
			},
		},
		{
			Regex: `^\$oldoffice\$[34]\*[a-f0-9]{32}\*[a-f0-9]{32}\*[a-f0-9]{40}$`,
			Modes: []model.HashMode{
				{Name: "Microsoft Office ≤ 2003 (SHA1+RC4)", Hashcat: hashcat(9800)},
			},
		},

		// Remote access and challenge-response.
		{
			Regex: `^(\$radmin2\$)?[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "RAdmin v2.x", Hashcat: hashcat(9900), John: john("radmin")},
			},
		},
		{
			Regex: `^\{x-issha,\s[0-9]{4}\}[a-z0-9\/+=]+$`,
			Modes: []model.HashMode{
				{Name: "SAP CODVN H (PWDSALTEDHASH) iSSHA-1", Hashcat: hashcat(10300), John: john("saph")},
			},
		},
		{
			Regex: `^\$cram_md5\$[a-z0-9\/+=-]+\$[a-z0-9\/+=-]{52}$`,
			Modes: []model.HashMode{
				{Name: "CRAM-MD5", Hashcat: hashcat(10200)},
			},
		},
		{
			Regex: `^[a-f0-9]{16}:2:4:[a-f0-9]{32}$`,
			Modes: []model.HashMode{
				{Name: "SipHash", Hashcat: hashcat(10100)},
			},
		},
	}
}

func hashcat(mode int) *int {
	return &mode
}

func john(format string) *string {
	return &format
}
