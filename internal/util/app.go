package util

func GetAppName() string {
	return "MaintCert"
}
