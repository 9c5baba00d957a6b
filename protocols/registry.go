package protocols

// DefaultTCPOrder returns the built-in TCP detector chain, ordered to
// minimize false positives on a short inspection window: strict
// magic-number protocols first, then request/status-line protocols whose
// version token disambiguates them from one another, then the weaker
// text-banner protocols last.
func DefaultTCPOrder() []Detector {
	return []Detector{
		TLSDetector,
		SSHDetector,
		HTTPDetector,
		SMBDetector,
		RTSPDetector,
		SIPDetector,
		MySQLDetector,
		PostgresDetector,
		MQTTDetector,
		RedisDetector,
		SMTPDetector,
		IMAPDetector,
		POP3Detector,
		FTPDetector,
		DNSDetector,
	}
}

// DefaultUDPOrder returns the built-in UDP detector chain.
func DefaultUDPOrder() []Detector {
	return []Detector{
		QUICDetector,
		STUNDetector,
		DHCPDetector,
		NTPDetector,
		DNSDetector,
		SIPDetector,
	}
}

// All returns every built-in detector, regardless of transport, in no
// particular order. Useful for building a custom chain or for exhaustive
// tests.
func All() []Detector {
	return []Detector{
		HTTPDetector, TLSDetector, SSHDetector, RedisDetector, QUICDetector,
		DNSDetector, MySQLDetector, PostgresDetector, MQTTDetector,
		SMTPDetector, POP3Detector, IMAPDetector, FTPDetector, SMBDetector,
		SIPDetector, RTSPDetector, STUNDetector, DHCPDetector, NTPDetector,
	}
}
