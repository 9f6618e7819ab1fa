package stock

import "sync"

// ChangeNotifier publica cambios de stock a suscriptores (refresco de la
// pick list en la UI). El envío es no bloqueante: un suscriptor lento pierde
// avisos intermedios, nunca frena una mutación.
type ChangeNotifier struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

// NewChangeNotifier construye el notificador.
func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{subs: make(map[chan string]struct{})}
}

// Subscribe registra un canal que recibe el productID afectado por cada
// mutación exitosa.
func (n *ChangeNotifier) Subscribe() chan string {
	ch := make(chan string, 8)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe retira y cierra el canal.
func (n *ChangeNotifier) Unsubscribe(ch chan string) {
	n.mu.Lock()
	if _, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(ch)
	}
	n.mu.Unlock()
}

// Notify avisa a todos los suscriptores que cambió stock del producto.
func (n *ChangeNotifier) Notify(productID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- productID:
		default:
		}
	}
}
