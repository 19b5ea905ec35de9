/*
Copyright © 2025 Deltacron
*/

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

func getFavicon() string {
	return `<meta name="theme-color" content="#ffffff">
	<link rel="icon" href="data:,">`
}

// Minimal HTML client for quick testing against the REST and websocket
// endpoints; real frontends speak the same protocol.
const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Meme Master</title>
<style>
  body { font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 2rem; }
  h1 { margin-bottom: 0.5rem; }
  #status { margin-bottom: 1rem; font-size: 0.9rem; }
  #state { white-space: pre; font-family: monospace; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>Meme Master</h1>
<div id="status">Idle.</div>
<div>
  <button id="create">Create room</button>
  <input id="code" placeholder="Room code">
  <input id="name" placeholder="Your name">
  <button id="join">Join</button>
</div>
<pre id="state"></pre>

<script>
(function() {
  const statusEl = document.getElementById('status');
  const stateEl = document.getElementById('state');

  let ws = null;

  const params = new URLSearchParams(location.search);
  if (params.get('code')) {
    document.getElementById('code').value = params.get('code');
  }

  document.getElementById('create').onclick = async function() {
    const res = await fetch('api/rooms', { method: 'POST', body: '{}' });
    const data = await res.json();
    document.getElementById('code').value = data.room.code;
    statusEl.textContent = 'Room ' + data.room.code + ' created.';
  };

  document.getElementById('join').onclick = async function() {
    const code = document.getElementById('code').value.trim();
    const name = document.getElementById('name').value.trim();
    if (!code || !name) { return; }

    const res = await fetch('api/rooms/' + code + '/join', {
      method: 'POST',
      body: JSON.stringify({ name: name, isHost: true })
    });
    if (!res.ok) {
      statusEl.textContent = 'Join failed.';
      return;
    }
    const data = await res.json();

    const proto = (location.protocol === 'https:') ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + location.pathname.replace(/\/$/, '') + '/ws');

    ws.onopen = function() {
      statusEl.textContent = 'Connected as ' + name + '.';
      ws.send(JSON.stringify({
        type: 'join_room',
        playerId: data.player.id,
        roomId: data.player.roomId
      }));
    };

    ws.onmessage = function(event) {
      const msg = JSON.parse(event.data);
      statusEl.textContent = 'Last event: ' + msg.type;
      if (msg.gameState) {
        stateEl.textContent = JSON.stringify(msg.gameState, null, 2);
      }
    };

    ws.onclose = function() {
      statusEl.textContent = 'Disconnected.';
    };
  };
})();
</script>
</body>
</html>
`

func serveHomePage(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(indexHTML))
	}
}

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := `User-agent: Amazonbot
Disallow: /

User-agent: Applebot-Extended
Disallow: /

User-agent: Bytespider
Disallow: /

User-agent: CCBot
Disallow: /

User-agent: ClaudeBot
Disallow: /

User-agent: Google-Extended
Disallow: /

User-agent: GPTBot
Disallow: /

User-agent: meta-externalagent
Disallow: /`

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(data))
		if err != nil {
			errs <- err

			return
		}
	}
}
