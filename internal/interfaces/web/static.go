package web

// appCSS hoja de estilos única de la aplicación, servida desde el binario
// para no depender de un directorio de assets en despliegue.
const appCSS = `
:root { --cafe: #6f4e37; --crema: #f6f1eb; --tinta: #2d2520; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--crema); color: var(--tinta); }
.container { max-width: 640px; margin: 0 auto; padding: 1rem; }
.topbar { display: flex; align-items: center; gap: 1rem; padding: .6rem 1rem; background: var(--cafe); color: #fff; }
.topbar a, .topbar button { color: #fff; text-decoration: none; background: none; border: none; font: inherit; cursor: pointer; }
.brand { font-weight: 700; margin-right: auto; }
.avatar { width: 42px; height: 42px; border-radius: 50%; object-fit: cover; }
.avatar.small { width: 26px; height: 26px; vertical-align: middle; }
.avatar.large { width: 84px; height: 84px; }
.post-card, .auth-box, .publish-box, .profile-info, .edit-profile { background: #fff; border-radius: 10px; padding: 1rem; margin: .8rem 0; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.post-card.compact { padding: .7rem 1rem; }
.post-header { display: flex; align-items: center; gap: .6rem; }
.post-author { color: inherit; text-decoration: none; }
.author-name { font-weight: 600; }
.post-time { margin-left: auto; color: #8a7c70; font-size: .85rem; }
.post-content { white-space: pre-wrap; margin: .6rem 0; }
.like-btn, .delete-btn { border: 1px solid #d9cec3; background: #fff; border-radius: 18px; padding: .25rem .8rem; cursor: pointer; }
.like-btn.active { background: var(--cafe); color: #fff; border-color: var(--cafe); }
.like-count { margin-left: .25rem; }
.badge { background: var(--cafe); color: #fff; border-radius: 12px; padding: .1rem .7rem; font-size: .8rem; }
.education, .bio { color: #5c5148; margin: .3rem 0; }
.auth-box input, .publish-box textarea, .edit-profile input, .edit-profile textarea { width: 100%; padding: .55rem; margin: .35rem 0; border: 1px solid #d9cec3; border-radius: 6px; font: inherit; }
.auth-box button, .publish-box button, .edit-profile button { background: var(--cafe); color: #fff; border: none; border-radius: 6px; padding: .55rem 1.2rem; cursor: pointer; margin-top: .4rem; }
.error { color: #b3261e; min-height: 1.2em; }
.empty-state { text-align: center; color: #8a7c70; padding: 2rem 0; }
.empty-state.error { color: #b3261e; }
.stats { display: flex; gap: 1.5rem; color: #8a7c70; margin: .5rem 0 1rem; }
.danger-zone button { background: #b3261e; }
`
