package handler

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const openAIHost = "api.openai.com"

// NetworkDebug probes connectivity to the classification service layer by
// layer: DNS, TCP, TLS handshake, then a plain HTTP GET. Each probe reports
// independently so a broken layer is visible even when later ones fail too.
// GET /debug/network
func (app *Application) NetworkDebug(c *gin.Context) {
	results := gin.H{}

	addrs, err := net.LookupHost(openAIHost)
	if err != nil || len(addrs) == 0 {
		results["dns"] = gin.H{"status": "error", "error": "no addresses resolved"}
		if err != nil {
			results["dns"] = gin.H{"status": "error", "error": err.Error()}
		}
	} else {
		results["dns"] = gin.H{"status": "ok", "ip": addrs[0]}
	}

	conn, err := net.DialTimeout("tcp", openAIHost+":443", 10*time.Second)
	if err != nil {
		results["tcp"] = gin.H{"status": "error", "error": err.Error()}
	} else {
		results["tcp"] = gin.H{"status": "ok"}

		tlsConn := tls.Client(conn, &tls.Config{ServerName: openAIHost})
		if err := tlsConn.HandshakeContext(c.Request.Context()); err != nil {
			results["tls"] = gin.H{"status": "error", "error": err.Error()}
		} else {
			results["tls"] = gin.H{"status": "ok", "version": tls.VersionName(tlsConn.ConnectionState().Version)}
		}
		conn.Close()
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get("https://" + openAIHost + "/v1/models")
	if err != nil {
		results["http_get"] = gin.H{"status": "error", "error": err.Error()}
	} else {
		resp.Body.Close()
		results["http_get"] = gin.H{"status": "ok", "code": resp.StatusCode}
	}

	c.JSON(http.StatusOK, results)
}
